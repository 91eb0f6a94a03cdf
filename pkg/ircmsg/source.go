package ircmsg

import "strings"

// Source identifies the sender of a message. User and Host are optional; an
// empty string means absent.
type Source struct {
	Nick string
	User string
	Host string
}

// Mask returns the source as it appears on the wire: :nick[!user][@host]
func (s Source) Mask() string {
	var b strings.Builder
	b.Grow(len(s.Nick) + len(s.User) + len(s.Host) + 3)
	b.WriteByte(':')
	b.WriteString(s.Nick)
	if s.User != "" {
		b.WriteByte('!')
		b.WriteString(s.User)
	}
	if s.Host != "" {
		b.WriteByte('@')
		b.WriteString(s.Host)
	}
	return b.String()
}

func (s Source) String() string {
	return s.Mask()
}
