package ircmsg

import "strings"

const (
	// MaxLineLength is the byte limit of a line, excluding its tags.
	MaxLineLength = 512

	// MaxTagsLength is the byte limit of the tags of a line, including the '@'.
	MaxTagsLength = 4096

	crlf = "\r\n"
)

// Parser parses message lines. It holds no state, so a single Parser may be
// used from any number of goroutines.
type Parser struct{}

// DefaultParser is the Parser used by the package-level functions.
var DefaultParser = Parser{}

// Parse parses a CRLF terminated line with DefaultParser.
func Parse(line string) (Message, error) {
	return DefaultParser.Parse(line)
}

// Parse parses a single line of the form [@tags ][:source ]command CRLF.
//
// Structural failures return a *ParseError matching ErrMalformedMessage; if a
// segment parser failed, its error is kept as the cause. Lines over the byte
// limits return a *LengthError matching ErrMessageTooLong.
func (p Parser) Parse(line string) (Message, error) {
	tags, source, command, err := splitLine(line)
	if err != nil {
		return Message{}, err
	}

	// The tags have their own budget, everything else shares the core limit.
	if n := len(line) - len(tags); n > MaxLineLength {
		return Message{}, &LengthError{Segment: "core", Length: n, Limit: MaxLineLength}
	}
	if n := len(tags); n > MaxTagsLength {
		return Message{}, &LengthError{Segment: "tags", Length: n, Limit: MaxTagsLength}
	}

	cmd, err := p.ParseCommand(command)
	if err != nil {
		return Message{}, &ParseError{
			Kind:   ErrMalformedMessage,
			Reason: "command is not a well-formed IRC command",
			Err:    err,
		}
	}

	var src *Source
	if source != "" {
		s, err := p.ParseSource(source)
		if err != nil {
			return Message{}, &ParseError{
				Kind:   ErrMalformedMessage,
				Reason: "source is not a well-formed IRC source",
				Err:    err,
			}
		}
		src = &s
	}

	tagList, err := p.ParseTags(tags)
	if err != nil {
		return Message{}, &ParseError{
			Kind:   ErrMalformedMessage,
			Reason: "tag list is not a well-formed list of IRC tags",
			Err:    err,
		}
	}
	if tagList == nil {
		tagList = NormalizeTags()
	}

	return Message{command: cmd, source: src, tags: tagList}, nil
}

// splitLine cuts a line into its tags, source and command segments. The tags
// and source segments keep their '@' and ':' markers and may be empty.
func splitLine(line string) (tags, source, command string, err error) {
	body, ok := strings.CutSuffix(line, crlf)
	if !ok {
		return "", "", "", malformed(ErrMalformedMessage, "line is not terminated by CRLF")
	}
	if strings.ContainsAny(body, crlf) {
		return "", "", "", malformed(ErrMalformedMessage, "line contains CR or LF before its end")
	}

	rest := body
	if strings.HasPrefix(rest, "@") {
		tags, rest, ok = strings.Cut(rest, " ")
		if !ok {
			return "", "", "", malformed(ErrMalformedMessage, "line has tags but no command")
		}
	}
	if strings.HasPrefix(rest, ":") {
		source, rest, ok = strings.Cut(rest, " ")
		if !ok {
			return "", "", "", malformed(ErrMalformedMessage, "line has a source but no command")
		}
	}
	if rest == "" {
		return "", "", "", malformed(ErrMalformedMessage, "line has no command")
	}
	return tags, source, rest, nil
}
