package ircmsg

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeValue(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"semicolon", "a;b", `a\:b`},
		{"space", "a b", `a\sb`},
		{"backslash", `a\b`, `a\\b`},
		{"cr lf", "a\r\nb", `a\r\nb`},
		{"mixed", `Hey; it's \ me`, `Hey\:\sit's\s\\\sme`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeValue(tt.plain))
		})
	}
}

func TestUnescapeValue(t *testing.T) {
	tests := []struct {
		name    string
		escaped string
		want    string
	}{
		{"plain", "hello", "hello"},
		{"semicolon", `a\:b`, "a;b"},
		{"space", `a\sb`, "a b"},
		{"backslash", `a\\b`, `a\b`},
		{"cr lf", `a\r\nb`, "a\r\nb"},
		{"unknown escape kept", `a\bc`, `a\bc`},
		{"trailing backslash dropped", `foo\`, "foo"},
		{"trailing escaped backslash kept", `foo\\`, `foo\`},
		{"odd trailing run", `foo\\\`, `foo\`},
		{"only backslash", `\`, ""},
		{"escape then dangling", `a\s\`, "a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnescapeValue(tt.escaped))
		})
	}
}

// Property: unescape(escape(s)) == s
func TestProperty_EscapeInverse(t *testing.T) {
	property := func(s string) bool {
		return UnescapeValue(EscapeValue(s)) == s
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: escaped output never holds bytes that must not appear on the wire
func TestProperty_EscapeIsWireSafe(t *testing.T) {
	property := func(s string) bool {
		return isWireSafe(EscapeValue(s)) || containsNUL(s)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func containsNUL(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}

func TestValue_States(t *testing.T) {
	flag := Flag()
	require.True(t, flag.IsFlag())
	_, ok := flag.Text()
	require.False(t, ok)

	empty := Text("")
	require.False(t, empty.IsFlag())
	text, ok := empty.Text()
	require.True(t, ok)
	require.Equal(t, "", text)

	require.NotEqual(t, flag, empty)

	v := Escaped("a b")
	text, _ = v.Text()
	require.Equal(t, `a\sb`, text)
	require.Equal(t, "a b", v.Unescaped())
}
