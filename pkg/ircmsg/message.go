package ircmsg

// Message is a parsed or built message line. It is never modified; use a
// Builder to derive a changed copy.
type Message struct {
	command Command
	source  *Source
	tags    *TagList
}

// NewMessage assembles a message. A nil source means the message has none; a
// nil tag list means tags are absent, which formats the same as an empty list.
func NewMessage(command Command, source *Source, tags *TagList) Message {
	m := Message{command: command, tags: tags}
	if source != nil {
		s := *source
		m.source = &s
	}
	return m
}

// Command returns the command.
func (m Message) Command() Command {
	return m.command
}

// Source returns the source, if the message has one.
func (m Message) Source() (Source, bool) {
	if m.source == nil {
		return Source{}, false
	}
	return *m.source, true
}

// Tags returns the tag list, or nil when tags are absent. Parsed messages
// always have a non-nil list.
func (m Message) Tags() *TagList {
	return m.tags
}

// Equal reports whether both messages carry the same command, source and
// tags. An absent tag list equals an empty one.
func (m Message) Equal(other Message) bool {
	if !m.command.Equal(other.command) {
		return false
	}
	if (m.source == nil) != (other.source == nil) {
		return false
	}
	if m.source != nil && *m.source != *other.source {
		return false
	}
	return m.tags.Equal(other.tags)
}

// String formats the message, or describes the formatting error.
func (m Message) String() string {
	line, err := Format(m)
	if err != nil {
		return "!(" + err.Error() + ")"
	}
	return line
}
