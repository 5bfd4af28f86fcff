package beanxml

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDocument     = errors.New("empty document")
	ErrMalformed         = errors.New("malformed XML")
	ErrUnexpectedElement = errors.New("unexpected element")
	ErrUnexpectedText    = errors.New("unexpected text")
	ErrMissingAttribute  = errors.New("missing required attribute")
	ErrMissingValue      = errors.New("missing required value")
	ErrInvalidValue      = errors.New("invalid value")
	ErrMultipleValues    = errors.New("more than one value")
)

// ParseError reports where in the input a document failed to parse.
// Err wraps one of the package sentinels.
type ParseError struct {
	Line   int
	Column int
	Path   string // element path, e.g. java/object[2]/void[1]
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("beanxml: line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("beanxml: %s (line %d, column %d): %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
