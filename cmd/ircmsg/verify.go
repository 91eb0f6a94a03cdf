package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cbroglie/mustache"
	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
)

const defaultVerifyTemplate = "{{{target}}} <{{{nick}}}> ✔ {{{text}}}"

// VerifyCmd verifies signed message lines.
type VerifyCmd struct {
	SigningFlags `embed:""`

	Template string   `short:"T" placeholder:"MUSTACHE" help:"Output template for verified messages. Variables: nick, user, host, mask, verb, target, text, arguments, tags."`
	Lines    []string `arg:"" optional:"" help:"Message lines. Read from stdin when omitted."`
}

func (c *VerifyCmd) Run(logger *slog.Logger, cfg *Config, st *streams) error {
	return c.verify(logger, cfg, st.in, st.out)
}

func (c *VerifyCmd) verify(logger *slog.Logger, cfg *Config, in io.Reader, out io.Writer) error {
	signer, err := c.signer(logger, cfg)
	if err != nil {
		return err
	}

	tmpl, err := mustache.ParseString(firstNonEmpty(c.Template, cfg.Verify.Template, defaultVerifyTemplate))
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	return eachMessage(in, c.Lines, logger, func(m ircmsg.Message) error {
		if err := signer.Verify(m); err != nil {
			return err
		}
		logger.Info("verified message", "message", m.String())

		line, err := tmpl.Render(templateData(m))
		if err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
		_, err = fmt.Fprintln(out, line)
		return err
	})
}
