package ircmsg

const (
	// Longest line the decoder accepts by default: a full tags budget plus
	// the core limit.
	defaultMaxLength = MaxTagsLength + MaxLineLength
)

// config holds decoder configuration.
type config struct {
	lenient   bool
	maxLength int
}

// Option configures a Decoder.
type Option func(*config)

// Lenient accepts lines terminated by a bare LF, or not terminated at all at
// the end of the stream, and skips blank lines. Such lines are given a CRLF
// terminator before parsing.
//
// This is useful for lines typed by hand or produced by echo.
//
// Default: false (every line must end in CRLF)
func Lenient() Option {
	return func(c *config) {
		c.lenient = true
	}
}

// MaxLength sets the maximum accepted line length in bytes, terminator
// included. Longer lines fail with ErrMessageTooLong and are skipped.
//
// Default: 4608 bytes (MaxTagsLength + MaxLineLength)
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}
