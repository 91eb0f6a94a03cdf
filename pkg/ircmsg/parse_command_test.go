package ircmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		verb      string
		arguments []string
	}{
		{"verb only", "QUIT", "QUIT", nil},
		{"lowercase verb", "privmsg #a b", "privmsg", []string{"#a", "b"}},
		{"numeric", "433 * coyote :Nickname is already in use", "433", []string{"*", "coyote", "Nickname is already in use"}},
		{"trailing", "PRIVMSG #test :Hey, I am a message!", "PRIVMSG", []string{"#test", "Hey, I am a message!"}},
		{"middle only", "MODE #test +o coyote", "MODE", []string{"#test", "+o", "coyote"}},
		{"empty trailing", "TOPIC #test :", "TOPIC", []string{"#test", ""}},
		{"colons kept after first", "PRIVMSG #a ::-) :D", "PRIVMSG", []string{"#a", ":-) :D"}},
		{"runs of spaces skipped", "MODE   #a    +i", "MODE", []string{"#a", "+i"}},
		{"spaces inside trailing kept", "PRIVMSG #a :x  y   z", "PRIVMSG", []string{"#a", "x  y   z"}},
		{"trailing space", "PING x ", "PING", []string{"x"}},
		{"colon in middle argument", "PRIVMSG a:b c", "PRIVMSG", []string{"a:b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCommand(tt.command)
			require.NoError(t, err)
			require.Equal(t, tt.verb, c.Verb())
			require.Equal(t, tt.arguments, c.Arguments())
		})
	}
}

func TestParseCommand_Malformed(t *testing.T) {
	for _, command := range []string{
		"",
		"12",
		"1234",
		"12a",
		"PRIV_MSG",
		"PRIVMSG\t#a",
		"PRIVMSG ",
		":PRIVMSG",
		" PRIVMSG",
	} {
		t.Run(command, func(t *testing.T) {
			_, err := ParseCommand(command)
			require.ErrorIs(t, err, ErrMalformedCommand)
		})
	}
}

func TestCommand_Numeric(t *testing.T) {
	_, ok := NewCommand("PRIVMSG").Numeric()
	require.False(t, ok)

	c := NewNumeric(5, "coyote", "CHANTYPES=#")
	require.Equal(t, "005", c.Verb())
	code, ok := c.Numeric()
	require.True(t, ok)
	require.Equal(t, 5, code)
}

func TestCommand_ArgumentsAreCopied(t *testing.T) {
	args := []string{"#a", "b"}
	c := NewCommand("PRIVMSG", args...)
	args[0] = "#changed"

	got := c.Arguments()
	require.Equal(t, "#a", got[0])
	got[1] = "changed"

	arg, ok := c.Argument(1)
	require.True(t, ok)
	require.Equal(t, "b", arg)

	_, ok = c.Argument(2)
	require.False(t, ok)
}
