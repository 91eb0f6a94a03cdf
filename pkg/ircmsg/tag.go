package ircmsg

import "strings"

// Tag is a single message tag.
type Tag struct {
	Name       string // key name, e.g. "msgid"
	Vendor     string // optional, e.g. "twitch.tv"
	ClientOnly bool   // rendered with a leading '+'
	Value      Value
}

// NewTag returns a tag with the given name and value, configured by opts.
func NewTag(name string, value Value, opts ...TagOption) Tag {
	t := Tag{Name: name, Value: value}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// TagOption configures a Tag built by NewTag or a Builder.
type TagOption func(*Tag)

// Vendor places the tag in a vendor namespace.
func Vendor(vendor string) TagOption {
	return func(t *Tag) {
		t.Vendor = vendor
	}
}

// ClientOnly marks the tag as client-only.
func ClientOnly() TagOption {
	return func(t *Tag) {
		t.ClientOnly = true
	}
}

// Key returns the composite key: [+][vendor/]name.
func (t Tag) Key() string {
	var b strings.Builder
	b.Grow(len(t.Name) + len(t.Vendor) + 2)
	if t.ClientOnly {
		b.WriteByte('+')
	}
	if t.Vendor != "" {
		b.WriteString(t.Vendor)
		b.WriteByte('/')
	}
	b.WriteString(t.Name)
	return b.String()
}

// baseKey returns the key without the client-only prefix.
func (t Tag) baseKey() string {
	return strings.TrimPrefix(t.Key(), "+")
}
