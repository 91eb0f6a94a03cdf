package ircmsg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name    string
		command Command
		want    string
	}{
		{"verb only", NewCommand("QUIT"), "QUIT"},
		{"middle arguments", NewCommand("MODE", "#test", "+o", "coyote"), "MODE #test +o coyote"},
		{"trailing with spaces", NewCommand("PRIVMSG", "#test", "Hey, I am a message!"), "PRIVMSG #test :Hey, I am a message!"},
		{"trailing with colon", NewCommand("PRIVMSG", "#test", ":)"), "PRIVMSG #test ::)"},
		{"empty trailing", NewCommand("TOPIC", "#test", ""), "TOPIC #test :"},
		{"rest joined onto trailing", NewCommand("PRIVMSG", "#test", "a b", "c"), "PRIVMSG #test :a b c"},
		{"numeric", NewNumeric(1, "coyote", "Welcome"), "001 coyote Welcome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCommand(tt.command))
		})
	}
}

func TestFormatSource(t *testing.T) {
	assert.Equal(t, ":coyote", FormatSource(Source{Nick: "coyote"}))
	assert.Equal(t, ":coyote!0", FormatSource(Source{Nick: "coyote", User: "0"}))
	assert.Equal(t, ":coyote@acme.com", FormatSource(Source{Nick: "coyote", Host: "acme.com"}))
	assert.Equal(t, ":coyote!0@acme.com", FormatSource(Source{Nick: "coyote", User: "0", Host: "acme.com"}))
}

func TestFormatTag(t *testing.T) {
	got, err := FormatTag(NewTag("foo", Flag()))
	require.NoError(t, err)
	require.Equal(t, "foo", got)

	got, err = FormatTag(NewTag("foo", Escaped("a b;c"), Vendor("acme.org"), ClientOnly()))
	require.NoError(t, err)
	require.Equal(t, `+acme.org/foo=a\sb\:c`, got)
}

func TestFormatTag_Empty(t *testing.T) {
	tag := NewTag("foo", Text(""))
	_, err := FormatTag(tag)
	require.ErrorIs(t, err, ErrEmptyTag)

	var tagErr *TagError
	require.True(t, errors.As(err, &tagErr))
	require.Equal(t, tag, tagErr.Tag)
}

func TestFormatTag_Unescaped(t *testing.T) {
	for _, value := range []string{"a b", "a;b", "a\rb", "a\nb", "a\x00b"} {
		_, err := FormatTag(NewTag("foo", Text(value)))
		require.ErrorIs(t, err, ErrMalformedTag, "value %q", value)
	}
}

func TestFormatTagList(t *testing.T) {
	l := NormalizeTags(
		NewTag("id", Text("1")),
		NewTag("flag", Flag()),
		NewTag("id", Text("2"), ClientOnly()),
		NewTag("hash", Text("abc"), Vendor("acme.org")),
	)

	got, err := FormatTagList(l)
	require.NoError(t, err)
	require.Equal(t, "@flag;acme.org/hash=abc;+id=2", got)
}

func TestFormatTagList_Empty(t *testing.T) {
	_, err := FormatTagList(NormalizeTags())
	require.ErrorIs(t, err, ErrEmptyTagList)

	_, err = FormatTagList(nil)
	require.ErrorIs(t, err, ErrEmptyTagList)
}

func TestFormatTagList_EmptyTag(t *testing.T) {
	_, err := FormatTagList(NormalizeTags(NewTag("a", Text("1")), NewTag("b", Text(""))))
	require.ErrorIs(t, err, ErrEmptyTag)
}

func TestFormat(t *testing.T) {
	src := Source{Nick: "MrT", User: "timmy", Host: "test.tld"}
	tags := NormalizeTags(NewTag("id", Text("1"), ClientOnly()))
	cmd := NewCommand("PRIVMSG", "#test", "hi there")

	tests := []struct {
		name    string
		message Message
		want    string
	}{
		{"command", NewMessage(cmd, nil, nil), "PRIVMSG #test :hi there\r\n"},
		{"empty tags", NewMessage(cmd, nil, NormalizeTags()), "PRIVMSG #test :hi there\r\n"},
		{"source", NewMessage(cmd, &src, nil), ":MrT!timmy@test.tld PRIVMSG #test :hi there\r\n"},
		{"tags", NewMessage(cmd, nil, tags), "@+id=1 PRIVMSG #test :hi there\r\n"},
		{"everything", NewMessage(cmd, &src, tags), "@+id=1 :MrT!timmy@test.tld PRIVMSG #test :hi there\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.message)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_EmptyTag(t *testing.T) {
	m := NewMessage(NewCommand("PING"), nil, NormalizeTags(NewTag("foo", Text(""))))
	_, err := Format(m)
	require.ErrorIs(t, err, ErrEmptyTag)
}

func TestFormat_ParsedLine(t *testing.T) {
	lines := []string{
		"PRIVMSG #test :Hey, I am a message!\r\n",
		"@+id=1 :MrT!timmy@test.tld PRIVMSG #test hi\r\n",
		"@acme.org/reason=a\\sb\\\\c;flag :irc.example.com 001 coyote :Welcome to the network\r\n",
		":coyote!0@acme.com TOPIC #test :\r\n",
	}

	for _, line := range lines {
		m, err := Parse(line)
		require.NoError(t, err)

		got, err := Format(m)
		require.NoError(t, err)
		require.Equal(t, line, got)
	}
}
