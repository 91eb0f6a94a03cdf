package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/epithet-ssh/ircmsg/pkg/identity"
	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
	"github.com/epithet-ssh/ircmsg/pkg/signature"
)

// SigningFlags are shared by sign and verify. Unset flags fall back to the
// config file.
type SigningFlags struct {
	Vendor    string `short:"V" help:"Vendor namespace of the hashed tags, e.g. acme.org."`
	Algorithm string `short:"a" help:"Hash algorithm (${algorithms})."`
	Key       string `short:"k" env:"IRC_SIGN_KEY" help:"Explicit key. Defaults to the source mask of each message."`
}

func (f SigningFlags) signer(logger *slog.Logger, cfg *Config) (*signature.Signer, error) {
	vendor := firstNonEmpty(f.Vendor, cfg.Sign.Vendor)
	if vendor == "" {
		return nil, errors.New("no vendor: pass --vendor or set sign.vendor")
	}

	opts := []signature.Option{signature.WithLogger(logger)}
	if algorithm := firstNonEmpty(f.Algorithm, cfg.Sign.Algorithm); algorithm != "" {
		opts = append(opts, signature.WithAlgorithm(algorithm))
	}
	if key := firstNonEmpty(f.Key, cfg.Sign.Key); key != "" {
		opts = append(opts, signature.WithKey([]byte(key)))
	}
	return signature.New(vendor, opts...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// SignCmd signs message lines.
type SignCmd struct {
	SigningFlags `embed:""`

	Lines []string `arg:"" optional:"" help:"Message lines. Read from stdin when omitted."`
}

func (c *SignCmd) Run(logger *slog.Logger, cfg *Config, st *streams) error {
	return c.sign(logger, cfg, identity.OS(), st.in, st.out)
}

// sign signs every line. Lines without a source get the one from the config
// file and environment.
func (c *SignCmd) sign(logger *slog.Logger, cfg *Config, env identity.Env, in io.Reader, out io.Writer) error {
	signer, err := c.signer(logger, cfg)
	if err != nil {
		return err
	}

	var (
		src    ircmsg.Source
		srcErr error
		srcSet bool
	)
	defaultSource := func() (ircmsg.Source, error) {
		if !srcSet {
			src, srcErr = cfg.source(env)
			srcSet = true
		}
		return src, srcErr
	}

	enc := ircmsg.NewEncoder(out)
	return eachMessage(in, c.Lines, logger, func(m ircmsg.Message) error {
		if _, ok := m.Source(); !ok {
			s, err := defaultSource()
			if err != nil {
				return fmt.Errorf("message has no source: %w", err)
			}
			m = ircmsg.FromMessage(m).WithSource(s).Build()
		}

		signed, err := signer.Sign(m)
		if err != nil {
			return err
		}
		return enc.Encode(signed)
	})
}

func algorithmsVar() string {
	return strings.Join(signature.Algorithms(), ", ")
}
