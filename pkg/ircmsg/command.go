package ircmsg

import (
	"slices"
	"strconv"
)

// Command is a verb with its arguments.
type Command struct {
	verb      string
	arguments []string
}

// NewCommand returns a command. The verb is not validated here; Parse only
// accepts alphabetic verbs and three digit numerics.
func NewCommand(verb string, arguments ...string) Command {
	return Command{verb: verb, arguments: slices.Clone(arguments)}
}

// NewNumeric returns a command for a numeric reply, e.g. 1 becomes "001".
func NewNumeric(code int, arguments ...string) Command {
	return NewCommand(formatNumeric(code), arguments...)
}

// Verb returns the command verb or numeric as sent.
func (c Command) Verb() string {
	return c.verb
}

// Numeric returns the reply code if the verb is a three digit numeric.
func (c Command) Numeric() (int, bool) {
	if !isNumericVerb(c.verb) {
		return 0, false
	}
	n, err := strconv.Atoi(c.verb)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Arguments returns a copy of the arguments.
func (c Command) Arguments() []string {
	return slices.Clone(c.arguments)
}

// Argument returns the i-th argument.
func (c Command) Argument(i int) (string, bool) {
	if i < 0 || i >= len(c.arguments) {
		return "", false
	}
	return c.arguments[i], true
}

// Len returns the number of arguments.
func (c Command) Len() int {
	return len(c.arguments)
}

// Equal reports whether both commands have the same verb and arguments.
func (c Command) Equal(other Command) bool {
	return c.verb == other.verb && slices.Equal(c.arguments, other.arguments)
}

func isNumericVerb(verb string) bool {
	if len(verb) != 3 {
		return false
	}
	for i := 0; i < len(verb); i++ {
		if verb[i] < '0' || verb[i] > '9' {
			return false
		}
	}
	return true
}

func formatNumeric(code int) string {
	s := strconv.Itoa(code)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
