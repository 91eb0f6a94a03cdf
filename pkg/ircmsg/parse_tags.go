package ircmsg

import (
	"fmt"
	"regexp"
	"strings"
)

const maxVendorLength = 253

var (
	// [vendor/]name
	tagKeyExpression = regexp.MustCompile(`^(?:([^/]+)/)?([A-Za-z0-9-]+)$`)

	// Dot-separated labels starting with a letter and not ending with a
	// hyphen, followed by an alphabetic top-level label.
	vendorExpression = regexp.MustCompile(`^(?:[A-Za-z](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,63}$`)
)

// ParseTags parses a tags segment with DefaultParser.
func ParseTags(tags string) (*TagList, error) {
	return DefaultParser.ParseTags(tags)
}

// ParseTags parses the tags segment of a line, including its leading '@',
// and returns the normalized list. An empty segment yields a nil list.
//
// A single malformed tag fails the whole list.
func (Parser) ParseTags(tags string) (*TagList, error) {
	if tags == "" {
		return nil, nil
	}

	body, ok := strings.CutPrefix(tags, "@")
	if !ok || body == "" {
		return nil, malformed(ErrMalformedTagList, "tag list must start with '@' followed by tags")
	}
	if i := strings.IndexAny(body, " \t\n\v\f\r"); i >= 0 {
		return nil, malformed(ErrMalformedTagList, fmt.Sprintf("unexpected whitespace at offset %d", i+1))
	}

	tokens := strings.Split(body, ";")
	raw := make([]Tag, 0, len(tokens))
	for i, token := range tokens {
		tag, err := parseTag(token)
		if err != nil {
			return nil, malformed(ErrMalformedTagList, fmt.Sprintf("tag %d: %s", i+1, err))
		}
		raw = append(raw, tag)
	}

	return NormalizeTags(raw...), nil
}

// tagSyntaxError describes why a single tag token was rejected.
type tagSyntaxError string

func (e tagSyntaxError) Error() string {
	return string(e)
}

// parseTag parses [+][vendor/]name[=escaped-value].
func parseTag(token string) (Tag, error) {
	if token == "" {
		return Tag{}, tagSyntaxError("empty tag")
	}

	var tag Tag
	token, tag.ClientOnly = strings.CutPrefix(token, "+")

	key, value, hasValue := strings.Cut(token, "=")
	matches := tagKeyExpression.FindStringSubmatch(key)
	if matches == nil {
		return Tag{}, tagSyntaxError(fmt.Sprintf("malformed key %q", key))
	}
	tag.Vendor, tag.Name = matches[1], matches[2]

	if tag.Vendor != "" && !isValidVendor(tag.Vendor) {
		return Tag{}, tagSyntaxError(fmt.Sprintf("malformed vendor %q", tag.Vendor))
	}

	if hasValue {
		if strings.ContainsAny(value, "\x00\r\n; ") {
			return Tag{}, tagSyntaxError(fmt.Sprintf("value of %q contains unescaped characters", key))
		}
		tag.Value = Text(value)
	}

	return tag, nil
}

func isValidVendor(vendor string) bool {
	return len(vendor) <= maxVendorLength && vendorExpression.MatchString(vendor)
}
