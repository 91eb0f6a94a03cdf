package ircmsg

import "strings"

// Value is the value of a tag: either a flag (no value at all) or text in its
// escaped wire form. Text("") is neither a flag nor a usable value; see
// TagList.Unescape and FormatTag.
type Value struct {
	text    string
	hasText bool
}

// Flag returns the value of a tag that has no value.
func Flag() Value {
	return Value{}
}

// Text returns a value holding escaped, wire-ready text.
func Text(escaped string) Value {
	return Value{text: escaped, hasText: true}
}

// Escaped escapes plain text and returns it as a value.
func Escaped(plain string) Value {
	return Text(EscapeValue(plain))
}

// IsFlag reports whether v carries no value.
func (v Value) IsFlag() bool {
	return !v.hasText
}

// Text returns the escaped text and whether v holds text at all.
func (v Value) Text() (string, bool) {
	return v.text, v.hasText
}

// Unescaped returns the decoded text; flags decode to "".
func (v Value) Unescaped() string {
	return UnescapeValue(v.text)
}

func (v Value) String() string {
	if !v.hasText {
		return "<flag>"
	}
	return v.text
}

var escaper = strings.NewReplacer(
	";", `\:`,
	" ", `\s`,
	`\`, `\\`,
	"\r", `\r`,
	"\n", `\n`,
)

// EscapeValue encodes s for use as a tag value on the wire.
//
//	EscapeValue("a b;c") // `a\sb\:c`
func EscapeValue(s string) string {
	return escaper.Replace(s)
}

// UnescapeValue decodes an escaped tag value.
//
// Known escapes are replaced; a backslash followed by anything else is kept
// as-is. A lone backslash at the very end of the value produces nothing:
//
//	UnescapeValue(`foo\`)  // "foo"
//	UnescapeValue(`foo\\`) // `foo\`
func UnescapeValue(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		// Dangling backslash
		if i+1 == len(s) {
			break
		}

		i++
		switch next := s[i]; next {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case '\\':
			b.WriteByte('\\')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte('\\')
			b.WriteByte(next)
		}
	}
	return b.String()
}

// isWireSafe reports whether an escaped value may be written as-is.
// NUL, CR, LF, semicolon and space must always appear escaped.
func isWireSafe(s string) bool {
	return !strings.ContainsAny(s, "\x00\r\n; ")
}
