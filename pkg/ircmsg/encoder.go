package ircmsg

import "io"

// Encoder writes message lines to an io.Writer.
//
// Writes are unbuffered; wrap the writer in a bufio.Writer if needed.
type Encoder struct {
	w         io.Writer
	formatter Formatter
}

// NewEncoder creates an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, formatter: DefaultFormatter}
}

// Encode formats m and writes it as one CRLF terminated line. Nothing is
// written if formatting fails.
func (e *Encoder) Encode(m Message) error {
	line, err := e.formatter.Format(m)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.w, line)
	return err
}
