package ircmsg

import (
	"io"
	"strings"
)

// Decoder reads message lines from an io.ByteReader.
//
// io.ByteReader is implemented by *bufio.Reader, *bytes.Reader and
// *strings.Reader. Wrap other readers in a bufio.Reader:
//
//	dec := ircmsg.NewDecoder(bufio.NewReader(os.Stdin), ircmsg.Lenient())
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r         io.ByteReader
	parser    Parser
	lenient   bool
	maxLength int
	lines     int
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.ByteReader, opts ...Option) *Decoder {
	cfg := &config{
		maxLength: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Decoder{
		r:         r,
		parser:    DefaultParser,
		lenient:   cfg.lenient,
		maxLength: cfg.maxLength,
	}
}

// Decode reads and parses the next line. Returns io.EOF when the stream ends.
func (d *Decoder) Decode() (Message, error) {
	line, err := d.DecodeLine()
	if err != nil {
		return Message{}, err
	}
	return d.parser.Parse(line)
}

// DecodeLine reads the next line, terminator included, without parsing it.
// Returns io.EOF when the stream ends.
func (d *Decoder) DecodeLine() (string, error) {
	for {
		line, err := d.readLine()
		if err != nil {
			return "", err
		}
		d.lines++

		if !d.lenient {
			return line, nil
		}

		trimmed := strings.TrimRight(line, crlf)
		if trimmed == "" {
			continue
		}
		return trimmed + crlf, nil
	}
}

// Lines returns the number of lines read so far, blank lines included.
func (d *Decoder) Lines() int {
	return d.lines
}

// readLine reads up to and including the next LF.
func (d *Decoder) readLine() (string, error) {
	var b strings.Builder
	for {
		c, err := d.r.ReadByte()
		if err == io.EOF {
			if b.Len() == 0 {
				return "", io.EOF
			}
			if d.lenient {
				return b.String(), nil
			}
			return "", malformed(ErrMalformedMessage, "unexpected EOF: expected CRLF")
		}
		if err != nil {
			return "", err
		}

		if b.Len() == d.maxLength {
			skipped := 1
			if c != '\n' {
				n, err := d.discardLine()
				if err != nil && err != io.EOF {
					return "", err
				}
				skipped += n
			}
			d.lines++
			return "", &LengthError{Segment: "line", Length: b.Len() + skipped, Limit: d.maxLength}
		}

		b.WriteByte(c)
		if c == '\n' {
			return b.String(), nil
		}
	}
}

// discardLine skips the rest of an oversized line, returning the number of
// bytes skipped.
func (d *Decoder) discardLine() (int, error) {
	n := 0
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return n, err
		}
		n++
		if c == '\n' {
			return n, nil
		}
	}
}
