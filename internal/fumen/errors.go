package fumen

import "errors"

var (
	// ErrUnsupportedVersion is returned for codes that are not v115.
	ErrUnsupportedVersion = errors.New("unsupported fumen version")
	// ErrMalformed is returned when the code data cannot be decoded.
	ErrMalformed = errors.New("malformed fumen data")
	// ErrOutOfField is returned when an operation places blocks outside the field.
	ErrOutOfField = errors.New("piece outside field")
	// ErrCommentTooLong is returned when an escaped comment does not fit in a page.
	ErrCommentTooLong = errors.New("comment too long")
)
