package trame

import (
	"errors"
	"fmt"

	"trameview/internal/beanxml"
	"trameview/internal/domain"
)

// ErrNilDocument is returned when Transform is given no document.
var ErrNilDocument = errors.New("trame: nil document")

// MissingFieldError reports a strict property (longueur, subType) that was
// present without the value kind it requires. It aborts the whole document.
type MissingFieldError struct {
	Object   int // zero-based position of the object in the document
	Property string
	Want     beanxml.Kind
	Got      beanxml.Kind
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("object %d: property %q: want %s value, got %s", e.Object, e.Property, e.Want, e.Got)
}

func (e *MissingFieldError) Unwrap() error {
	return domain.ErrMissingField
}
