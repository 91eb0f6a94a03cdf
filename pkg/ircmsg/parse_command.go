package ircmsg

import (
	"regexp"
	"strings"
)

// verb, then an optional single space and the arguments
var commandExpression = regexp.MustCompile(`^([A-Za-z]+|[0-9]{3})(?: (.+))?$`)

// ParseCommand parses a command segment with DefaultParser.
func ParseCommand(command string) (Command, error) {
	return DefaultParser.ParseCommand(command)
}

// ParseCommand parses the command segment of a line, e.g. "PRIVMSG #test :hi".
//
// Arguments are separated by spaces, and runs of spaces are ignored. The
// first argument starting with ':' takes the rest of the segment, spaces
// included, with the colon removed.
func (Parser) ParseCommand(command string) (Command, error) {
	matches := commandExpression.FindStringSubmatch(command)
	if matches == nil {
		return Command{}, malformed(ErrMalformedCommand, "verb must be alphabetic or a three digit numeric")
	}

	return Command{verb: matches[1], arguments: splitArguments(matches[2])}, nil
}

func splitArguments(s string) []string {
	var arguments []string
	for s != "" {
		token, rest, more := strings.Cut(s, " ")

		// The rest of the segment is a single argument.
		if strings.HasPrefix(token, ":") {
			arguments = append(arguments, s[1:])
			break
		}

		if token != "" {
			arguments = append(arguments, token)
		}
		if !more {
			break
		}
		s = rest
	}
	return arguments
}
