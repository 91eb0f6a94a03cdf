package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
)

// ParseCmd prints the parts of message lines.
type ParseCmd struct {
	JSON  bool     `help:"Print one JSON object per line."`
	Lines []string `arg:"" optional:"" help:"Message lines. Read from stdin when omitted."`
}

type messageView struct {
	Tags      []tagView   `json:"tags,omitempty"`
	Source    *sourceView `json:"source,omitempty"`
	Verb      string      `json:"verb"`
	Arguments []string    `json:"arguments"`
}

type tagView struct {
	Key        string  `json:"key"`
	Vendor     string  `json:"vendor,omitempty"`
	Name       string  `json:"name"`
	ClientOnly bool    `json:"client_only,omitempty"`
	Value      *string `json:"value"`
}

type sourceView struct {
	Nick string `json:"nick"`
	User string `json:"user,omitempty"`
	Host string `json:"host,omitempty"`
}

func newMessageView(m ircmsg.Message) messageView {
	v := messageView{
		Verb:      m.Command().Verb(),
		Arguments: m.Command().Arguments(),
	}
	if src, ok := m.Source(); ok {
		v.Source = &sourceView{Nick: src.Nick, User: src.User, Host: src.Host}
	}
	for key, tag := range m.Tags().All() {
		tv := tagView{
			Key:        key,
			Vendor:     tag.Vendor,
			Name:       tag.Name,
			ClientOnly: tag.ClientOnly,
		}
		if !tag.Value.IsFlag() {
			value := tag.Value.Unescaped()
			tv.Value = &value
		}
		v.Tags = append(v.Tags, tv)
	}
	return v
}

func (c *ParseCmd) Run(logger *slog.Logger, st *streams) error {
	enc := json.NewEncoder(st.out)
	return eachMessage(st.in, c.Lines, logger, func(m ircmsg.Message) error {
		logger.Debug("parsed message", "message", m.String())
		if c.JSON {
			return enc.Encode(newMessageView(m))
		}
		return writeMessage(st.out, newMessageView(m))
	})
}

func writeMessage(w io.Writer, v messageView) error {
	if _, err := fmt.Fprintf(w, "verb: %s\n", v.Verb); err != nil {
		return err
	}
	for i, arg := range v.Arguments {
		fmt.Fprintf(w, "argument[%d]: %q\n", i, arg)
	}
	if v.Source != nil {
		fmt.Fprintf(w, "source: nick=%q user=%q host=%q\n", v.Source.Nick, v.Source.User, v.Source.Host)
	}
	for _, tag := range v.Tags {
		if tag.Value == nil {
			fmt.Fprintf(w, "tag: %s\n", tag.Key)
			continue
		}
		fmt.Fprintf(w, "tag: %s = %q\n", tag.Key, *tag.Value)
	}
	_, err := fmt.Fprintln(w)
	return err
}
