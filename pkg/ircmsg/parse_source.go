package ircmsg

import "regexp"

// :nick[!user][@host]
var sourceExpression = regexp.MustCompile(`^:([^!@ ]+)(?:!([^@ ]+))?(?:@([^ ]+))?$`)

// ParseSource parses a source segment with DefaultParser.
func ParseSource(source string) (Source, error) {
	return DefaultParser.ParseSource(source)
}

// ParseSource parses the source segment of a line, including its leading
// colon, e.g. ":coyote!0@acme.com".
func (Parser) ParseSource(source string) (Source, error) {
	matches := sourceExpression.FindStringSubmatch(source)
	if matches == nil {
		return Source{}, malformed(ErrMalformedSource, "source must look like :nick[!user][@host]")
	}

	return Source{Nick: matches[1], User: matches[2], Host: matches[3]}, nil
}
