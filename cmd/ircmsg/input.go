package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
)

// eachMessage decodes lines from args, or from in when args is empty, and
// calls fn for every message. Malformed lines and failures of fn are logged
// and skipped; the returned error counts them.
func eachMessage(in io.Reader, args []string, logger *slog.Logger, fn func(ircmsg.Message) error) error {
	if len(args) > 0 {
		in = strings.NewReader(strings.Join(args, "\n"))
	}

	dec := ircmsg.NewDecoder(bufio.NewReader(in), ircmsg.Lenient())
	failed := 0
	for {
		m, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !errors.Is(err, ircmsg.ErrMalformedMessage) && !errors.Is(err, ircmsg.ErrMessageTooLong) {
				return fmt.Errorf("failed to read input: %w", err)
			}
			logger.Warn("skipping line", "line", dec.Lines(), "error", err)
			failed++
			continue
		}

		if err := fn(m); err != nil {
			logger.Warn("line failed", "line", dec.Lines(), "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d line(s) failed", failed)
	}
	return nil
}

// parseTagFlag parses "key" or "key=value" where key is [+][vendor/]name and
// value is unescaped text.
func parseTagFlag(s string) (ircmsg.Tag, error) {
	key, value, hasValue := strings.Cut(s, "=")

	tags, err := ircmsg.ParseTags("@" + key)
	if err != nil || tags.Len() != 1 {
		return ircmsg.Tag{}, fmt.Errorf("invalid tag key %q", key)
	}
	tag := tags.Tags()[0]

	if hasValue {
		tag.Value = ircmsg.Escaped(value)
	}
	return tag, nil
}
