// Package identity derives a default message source from the environment.
package identity

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
)

// Environment variables consulted by FromEnv, in order of preference over
// the OS user and hostname.
const (
	EnvNick = "IRC_NICK"
	EnvUser = "IRC_USER"
	EnvHost = "IRC_HOST"
)

// Env abstracts the process environment for testing.
type Env struct {
	LookupEnv func(key string) (string, bool)
	Username  func() (string, error)
	Hostname  func() (string, error)
}

// OS returns an Env backed by the running process.
func OS() Env {
	return Env{
		LookupEnv: os.LookupEnv,
		Username: func() (string, error) {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		Hostname: os.Hostname,
	}
}

// FromEnv returns the source for the running process.
func FromEnv() (ircmsg.Source, error) {
	return OS().Source()
}

// Source builds a source: the nick and user default to the OS user name, the
// host to the hostname. Characters that would break the mask are replaced
// with '_'.
func (e Env) Source() (ircmsg.Source, error) {
	username, err := e.lookup(EnvUser, e.Username)
	if err != nil {
		return ircmsg.Source{}, fmt.Errorf("failed to determine user name: %w", err)
	}

	nick := username
	if v, ok := e.LookupEnv(EnvNick); ok && v != "" {
		nick = v
	}

	host, err := e.lookup(EnvHost, e.Hostname)
	if err != nil {
		return ircmsg.Source{}, fmt.Errorf("failed to determine host name: %w", err)
	}

	src := ircmsg.Source{
		Nick: sanitize(nick, "!@ "),
		User: sanitize(username, "@ "),
		Host: sanitize(host, " "),
	}
	if src.Nick == "" {
		return ircmsg.Source{}, fmt.Errorf("no nick available, set %s", EnvNick)
	}
	return src, nil
}

func (e Env) lookup(key string, fallback func() (string, error)) (string, error) {
	if v, ok := e.LookupEnv(key); ok && v != "" {
		return v, nil
	}
	if fallback == nil {
		return "", nil
	}
	return fallback()
}

// sanitize replaces forbidden and control characters with '_'.
func sanitize(s, forbidden string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(forbidden, r) {
			return '_'
		}
		return r
	}, s)
}
