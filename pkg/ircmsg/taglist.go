package ircmsg

import (
	"iter"
	"slices"
)

// TagList is a normalized, ordered set of tags with unique keys.
//
// The zero value and a nil *TagList are both empty lists. A TagList is never
// modified after NormalizeTags returns it.
type TagList struct {
	keys []string
	tags map[string]Tag
}

// NormalizeTags builds a TagList from raw tags.
//
// For tags sharing a key the last one wins. A client-only tag replaces the
// plain tag with the same base key regardless of order, and is stored under
// its own "+"-prefixed key. Plain tags come first in the resulting order,
// followed by the client-only tags that won, each in the order their base key
// was first seen.
func NormalizeTags(tags ...Tag) *TagList {
	var order []string
	winners := make(map[string]Tag, len(tags))
	seen := func(base string) {
		if _, ok := winners[base]; !ok {
			order = append(order, base)
		}
	}

	var clientOnly []Tag
	for _, tag := range tags {
		if tag.ClientOnly {
			clientOnly = append(clientOnly, tag)
			continue
		}
		base := tag.Key()
		seen(base)
		winners[base] = tag
	}

	// Client-only tags override, whatever their position on the wire.
	for _, tag := range clientOnly {
		base := tag.baseKey()
		seen(base)
		winners[base] = tag
	}

	l := &TagList{
		keys: make([]string, 0, len(order)),
		tags: make(map[string]Tag, len(order)),
	}
	for _, clientPass := range []bool{false, true} {
		for _, base := range order {
			tag := winners[base]
			if tag.ClientOnly != clientPass {
				continue
			}
			key := tag.Key()
			l.keys = append(l.keys, key)
			l.tags[key] = tag
		}
	}
	return l
}

// Len returns the number of tags.
func (l *TagList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.keys)
}

// Contains reports whether a tag is stored under key.
func (l *TagList) Contains(key string) bool {
	_, ok := l.Tag(key)
	return ok
}

// Tag returns the tag stored under key.
func (l *TagList) Tag(key string) (Tag, bool) {
	if l == nil {
		return Tag{}, false
	}
	t, ok := l.tags[key]
	return t, ok
}

// Get returns the raw value stored under key. The boolean is false when the
// key is absent.
func (l *TagList) Get(key string) (Value, bool) {
	t, ok := l.Tag(key)
	return t.Value, ok
}

// Is reports whether key is present as a flag.
//
//	if msg.Tags().Is("delayed") { ... }
func (l *TagList) Is(key string) bool {
	v, ok := l.Get(key)
	return ok && v.IsFlag()
}

// Unescape returns the decoded value stored under key. It fails with
// ErrTagNotFound, ErrUnexpectedValue for a flag, or ErrEmptyValue for an
// explicit empty value.
func (l *TagList) Unescape(key string) (string, error) {
	v, ok := l.Get(key)
	if !ok {
		return "", &KeyError{Key: key, Err: ErrTagNotFound}
	}
	text, ok := v.Text()
	if !ok {
		return "", &KeyError{Key: key, Err: ErrUnexpectedValue}
	}
	if text == "" {
		return "", &KeyError{Key: key, Err: ErrEmptyValue}
	}
	return UnescapeValue(text), nil
}

// All yields key/tag pairs in normalized order.
func (l *TagList) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		if l == nil {
			return
		}
		for _, key := range l.keys {
			if !yield(key, l.tags[key]) {
				return
			}
		}
	}
}

// Keys returns the keys in normalized order.
func (l *TagList) Keys() []string {
	if l == nil {
		return nil
	}
	return slices.Clone(l.keys)
}

// Tags returns the tags in normalized order.
func (l *TagList) Tags() []Tag {
	if l == nil {
		return nil
	}
	out := make([]Tag, 0, len(l.keys))
	for _, key := range l.keys {
		out = append(out, l.tags[key])
	}
	return out
}

// Equal reports whether both lists hold the same tags, ignoring order.
func (l *TagList) Equal(other *TagList) bool {
	if l.Len() != other.Len() {
		return false
	}
	for key, tag := range l.All() {
		o, ok := other.Tag(key)
		if !ok || o != tag {
			return false
		}
	}
	return true
}
