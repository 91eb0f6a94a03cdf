package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cbroglie/mustache"
	"github.com/epithet-ssh/ircmsg/pkg/identity"
	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
)

// ComposeCmd builds one message line.
type ComposeCmd struct {
	Tags      []string `short:"t" name:"tag" sep:"none" placeholder:"KEY[=VALUE]" help:"Add a tag, e.g. +acme.org/id=1. Repeatable."`
	Source    string   `short:"s" placeholder:"NICK[!USER][@HOST]" help:"Message source."`
	FromEnv   bool     `short:"e" help:"Use the source from the config file and environment."`
	Render    bool     `short:"r" help:"Render arguments as mustache templates over the source and tags, e.g. 'hi from {{nick}}'."`
	Verb      string   `arg:"" help:"Command verb or three digit numeric."`
	Arguments []string `arg:"" optional:"" help:"Command arguments. The last one may contain spaces."`
}

func (c *ComposeCmd) Run(logger *slog.Logger, cfg *Config, st *streams) error {
	return c.compose(logger, cfg, identity.OS(), st.out)
}

func (c *ComposeCmd) compose(logger *slog.Logger, cfg *Config, env identity.Env, out io.Writer) error {
	if _, err := ircmsg.ParseCommand(c.Verb); err != nil {
		return fmt.Errorf("invalid verb %q: %w", c.Verb, err)
	}

	tags := make([]ircmsg.Tag, 0, len(c.Tags))
	for _, s := range c.Tags {
		tag, err := parseTagFlag(s)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}
	b := ircmsg.NewBuilder().WithTags(ircmsg.NormalizeTags(tags...))

	switch {
	case c.Source != "":
		src, err := ircmsg.ParseSource(":" + c.Source)
		if err != nil {
			return fmt.Errorf("invalid source %q: %w", c.Source, err)
		}
		b = b.WithSource(src)
	case c.FromEnv:
		src, err := cfg.source(env)
		if err != nil {
			return err
		}
		b = b.WithSource(src)
	}

	arguments := c.Arguments
	if c.Render {
		var err error
		arguments, err = renderArguments(b.Build(), arguments)
		if err != nil {
			return err
		}
	}

	logger.Debug("composed message", "verb", c.Verb, "arguments", len(arguments))
	return ircmsg.NewEncoder(out).Encode(b.Command(c.Verb, arguments...).Build())
}

func renderArguments(m ircmsg.Message, arguments []string) ([]string, error) {
	data := templateData(m)
	rendered := make([]string, len(arguments))
	for i, arg := range arguments {
		out, err := mustache.Render(arg, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render argument %d: %w", i, err)
		}
		rendered[i] = out
	}
	return rendered, nil
}

// templateData exposes a message to mustache templates. Tag values are
// unescaped and keyed by name without the vendor, since mustache reads dots
// as path separators. Flags render as true.
func templateData(m ircmsg.Message) map[string]any {
	data := map[string]any{
		"verb":      m.Command().Verb(),
		"arguments": m.Command().Arguments(),
	}
	if src, ok := m.Source(); ok {
		data["nick"] = src.Nick
		data["user"] = src.User
		data["host"] = src.Host
		data["mask"] = src.Mask()
	}
	if arg, ok := m.Command().Argument(0); ok {
		data["target"] = arg
	}
	if n := m.Command().Len(); n > 0 {
		data["text"], _ = m.Command().Argument(n - 1)
	}

	tags := map[string]any{}
	for _, tag := range m.Tags().All() {
		if tag.Value.IsFlag() {
			tags[tag.Name] = true
			continue
		}
		tags[tag.Name] = tag.Value.Unescaped()
	}
	data["tags"] = tags
	return data
}
