package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/epithet-ssh/ircmsg/pkg/config"
	"github.com/epithet-ssh/ircmsg/pkg/identity"
	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
)

// Config is the optional config file of ircmsg. Flags override it.
type Config struct {
	Source SourceConfig `json:"source"`
	Sign   SignConfig   `json:"sign"`
	Verify VerifyConfig `json:"verify"`
}

// SourceConfig overrides parts of the source derived from the environment.
type SourceConfig struct {
	Nick string `json:"nick,omitempty"`
	User string `json:"user,omitempty"`
	Host string `json:"host,omitempty"`
}

// SignConfig holds signing defaults shared by sign and verify.
type SignConfig struct {
	Vendor    string `json:"vendor,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Key       string `json:"key,omitempty"`
}

// VerifyConfig holds verify defaults.
type VerifyConfig struct {
	Template string `json:"template,omitempty"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ircmsg", "config.toml")
}

// loadConfig loads path, or the default config file when path is empty. A
// missing default file yields an empty config.
func loadConfig(path string, logger *slog.Logger) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		logger.Debug("no config file", "path", path)
		return &Config{}, nil
	}

	cfg, err := config.LoadFromFile[Config](path)
	if err != nil {
		return nil, fmt.Errorf("unable to load config %s: %w", path, err)
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// source returns the configured source, filling unset parts from env.
func (c *Config) source(env identity.Env) (ircmsg.Source, error) {
	src := ircmsg.Source{
		Nick: c.Source.Nick,
		User: c.Source.User,
		Host: c.Source.Host,
	}
	if src.Nick != "" && src.User != "" && src.Host != "" {
		return src, nil
	}

	def, err := env.Source()
	if err != nil {
		return ircmsg.Source{}, err
	}
	if src.Nick == "" {
		src.Nick = def.Nick
	}
	if src.User == "" {
		src.User = def.User
	}
	if src.Host == "" {
		src.Host = def.Host
	}
	return src, nil
}
