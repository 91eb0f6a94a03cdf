package ircmsg

import "strings"

// Formatter renders messages and their parts as wire text. Like Parser it
// holds no state.
type Formatter struct{}

// DefaultFormatter is the Formatter used by the package-level functions.
var DefaultFormatter = Formatter{}

// Format renders a message with DefaultFormatter.
func Format(m Message) (string, error) {
	return DefaultFormatter.Format(m)
}

// FormatCommand renders a command with DefaultFormatter.
func FormatCommand(c Command) string {
	return DefaultFormatter.FormatCommand(c)
}

// FormatSource renders a source with DefaultFormatter.
func FormatSource(s Source) string {
	return DefaultFormatter.FormatSource(s)
}

// FormatTag renders a tag with DefaultFormatter.
func FormatTag(t Tag) (string, error) {
	return DefaultFormatter.FormatTag(t)
}

// FormatTagList renders a tag list with DefaultFormatter.
func FormatTagList(l *TagList) (string, error) {
	return DefaultFormatter.FormatTagList(l)
}

// Format renders a complete CRLF terminated line. Empty tags and a missing
// source are left out.
func (f Formatter) Format(m Message) (string, error) {
	parts := make([]string, 0, 3)

	if m.tags.Len() > 0 {
		tags, err := f.FormatTagList(m.tags)
		if err != nil {
			return "", err
		}
		parts = append(parts, tags)
	}

	if m.source != nil {
		parts = append(parts, f.FormatSource(*m.source))
	}

	parts = append(parts, f.FormatCommand(m.command))

	return strings.Join(parts, " ") + crlf, nil
}

// FormatCommand renders the verb and arguments. The first argument that is
// empty, contains a space or starts with ':' becomes the trailing argument,
// and every argument after it is joined onto it.
func (Formatter) FormatCommand(c Command) string {
	var b strings.Builder
	b.WriteString(c.verb)

	for i, argument := range c.arguments {
		b.WriteByte(' ')
		if argument == "" || strings.Contains(argument, " ") || strings.HasPrefix(argument, ":") {
			b.WriteByte(':')
			b.WriteString(strings.Join(c.arguments[i:], " "))
			break
		}
		b.WriteString(argument)
	}

	return b.String()
}

// FormatSource renders the source mask.
func (Formatter) FormatSource(s Source) string {
	return s.Mask()
}

// FormatTag renders key or key=value.
//
// An explicit empty value fails with a *TagError matching ErrEmptyTag rather
// than being written as a flag. Values holding NUL, CR, LF, ';' or space fail
// with ErrMalformedTag, since those must be escaped.
func (Formatter) FormatTag(t Tag) (string, error) {
	key := t.Key()

	text, ok := t.Value.Text()
	if !ok {
		return key, nil
	}
	if text == "" {
		return "", &TagError{Tag: t, Err: ErrEmptyTag}
	}
	if !isWireSafe(text) {
		return "", &TagError{Tag: t, Err: ErrMalformedTag}
	}
	return key + "=" + text, nil
}

// FormatTagList renders '@' followed by the ';'-separated tags, in order.
func (f Formatter) FormatTagList(l *TagList) (string, error) {
	if l.Len() == 0 {
		return "", ErrEmptyTagList
	}

	var b strings.Builder
	b.WriteByte('@')
	for _, tag := range l.All() {
		rendered, err := f.FormatTag(tag)
		if err != nil {
			return "", err
		}
		if b.Len() > 1 {
			b.WriteByte(';')
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}
