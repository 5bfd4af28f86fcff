package domain

import "errors"

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrFileTooLarge   = errors.New("file exceeds maximum allowed size")
	ErrNotUTF8        = errors.New("file content is not valid UTF-8")
	ErrMissingField   = errors.New("required property value missing")
	ErrUnknownFormat  = errors.New("unknown export format")
)
