package ircmsg

import "slices"

// Builder assembles messages step by step. Every method returns a new
// Builder and leaves the receiver untouched, so partially configured builders
// can be shared and reused:
//
//	base := ircmsg.NewBuilder().WithSource(src)
//	hello := base.Command("PRIVMSG", "#test", "hello")
//	bye := base.Command("PART", "#test", "bye")
type Builder struct {
	verb      string
	arguments []string
	source    *Source
	tags      []Tag
}

// NewBuilder returns an empty builder.
func NewBuilder() Builder {
	return Builder{}
}

// FromMessage returns a builder holding everything in m.
func FromMessage(m Message) Builder {
	return Builder{
		verb:      m.command.verb,
		arguments: m.command.arguments,
		source:    m.source,
		tags:      m.tags.Tags(),
	}
}

// WithSource sets the source.
func (b Builder) WithSource(s Source) Builder {
	b.source = &s
	return b
}

// WithoutSource removes the source.
func (b Builder) WithoutSource() Builder {
	b.source = nil
	return b
}

// WithTags replaces all tags with those in l.
func (b Builder) WithTags(l *TagList) Builder {
	b.tags = l.Tags()
	return b
}

// WithTag adds a tag with a plain text value, which is escaped for the wire.
//
//	b.WithTag("hash", sum, ircmsg.Vendor("acme.org"))
func (b Builder) WithTag(name, value string, opts ...TagOption) Builder {
	return b.withTag(NewTag(name, Escaped(value), opts...))
}

// WithFlag adds a tag without a value.
func (b Builder) WithFlag(name string, opts ...TagOption) Builder {
	return b.withTag(NewTag(name, Flag(), opts...))
}

func (b Builder) withTag(t Tag) Builder {
	b.tags = append(slices.Clip(b.tags), t)
	return b
}

// WithoutTag removes every tag with the given name and vendor, client-only
// or not. Use an empty vendor for tags without one.
func (b Builder) WithoutTag(name, vendor string) Builder {
	b.tags = slices.DeleteFunc(slices.Clone(b.tags), func(t Tag) bool {
		return t.Name == name && t.Vendor == vendor
	})
	return b
}

// WithoutTags removes all tags.
func (b Builder) WithoutTags() Builder {
	b.tags = nil
	return b
}

// Command sets the verb and replaces the arguments.
func (b Builder) Command(verb string, arguments ...string) Builder {
	b.verb = verb
	b.arguments = slices.Clone(arguments)
	return b
}

// WithArguments replaces the arguments.
func (b Builder) WithArguments(arguments ...string) Builder {
	b.arguments = slices.Clone(arguments)
	return b
}

// WithArgument appends one argument.
func (b Builder) WithArgument(argument string) Builder {
	b.arguments = append(slices.Clip(b.arguments), argument)
	return b
}

// TagList returns the normalized tags added so far.
func (b Builder) TagList() *TagList {
	return NormalizeTags(b.tags...)
}

// Build returns the message. Its tag list is never nil.
func (b Builder) Build() Message {
	return NewMessage(NewCommand(b.verb, b.arguments...), b.source, b.TagList())
}

// Format builds the message and renders it as a line.
func (b Builder) Format() (string, error) {
	return Format(b.Build())
}

func (b Builder) String() string {
	return b.Build().String()
}
