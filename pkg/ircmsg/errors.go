package ircmsg

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrMalformedCommand indicates a command whose verb is not a word or a three digit numeric.
	ErrMalformedCommand = errors.New("ircmsg: malformed command")

	// ErrMalformedSource indicates a source that is not a :nick[!user][@host] mask.
	ErrMalformedSource = errors.New("ircmsg: malformed source")

	// ErrMalformedTagList indicates a tag list that does not follow the message-tags grammar.
	ErrMalformedTagList = errors.New("ircmsg: malformed tag list")

	// ErrMalformedMessage indicates a line that is not a well-formed message.
	ErrMalformedMessage = errors.New("ircmsg: malformed message")

	// ErrMessageTooLong indicates a line exceeding one of the byte limits.
	ErrMessageTooLong = errors.New("ircmsg: message too long")

	// ErrMalformedTag indicates a tag value holding bytes that may not appear unescaped.
	ErrMalformedTag = errors.New("ircmsg: malformed tag")

	// ErrEmptyTag indicates an attempt to format a tag with an explicit empty value.
	ErrEmptyTag = errors.New("ircmsg: empty tag")

	// ErrEmptyTagList indicates an attempt to format a tag list without tags.
	ErrEmptyTagList = errors.New("ircmsg: empty tag list")

	// ErrTagNotFound indicates a lookup of a key that is not in the tag list.
	ErrTagNotFound = errors.New("ircmsg: tag not found")

	// ErrUnexpectedValue indicates a flag where a text value was required.
	ErrUnexpectedValue = errors.New("ircmsg: tag is a flag")

	// ErrEmptyValue indicates an empty text value where a non-empty one was required.
	ErrEmptyValue = errors.New("ircmsg: tag has no value")
)

// ParseError describes a parse failure. Kind is one of the ErrMalformed*
// sentinels; Err is the failure of a nested parser, if any.
type ParseError struct {
	Kind   error
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Cause returns the nested parser failure, or nil.
func (e *ParseError) Cause() error {
	return e.Err
}

// LengthError reports which part of a line exceeded its byte limit.
type LengthError struct {
	Segment string // "core" or "tags"
	Length  int
	Limit   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("ircmsg: %s too long: %d bytes long, max %d bytes allowed", e.Segment, e.Length, e.Limit)
}

func (e *LengthError) Unwrap() error {
	return ErrMessageTooLong
}

// TagError carries the tag that could not be formatted.
type TagError struct {
	Tag Tag
	Err error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Tag.Key())
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// KeyError carries the key of a failed tag list lookup.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

func malformed(kind error, reason string) error {
	return &ParseError{Kind: kind, Reason: reason}
}
