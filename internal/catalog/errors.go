package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnCount is returned for rows with fewer than MinColumns columns.
	ErrColumnCount = errors.New("too few columns")
	// ErrInvalidPercent is returned for success percentages that are not "DD.DD%".
	ErrInvalidPercent = errors.New("invalid percentage")
	// ErrInvalidFlag is returned for intermediate flags that are not booleans.
	ErrInvalidFlag = errors.New("invalid flag")
	// ErrMissingID is returned for rows without an id.
	ErrMissingID = errors.New("missing id")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrMissingHeader is returned for an empty table.
	ErrMissingHeader = errors.New("missing header row")
)

// RowError reports a malformed input row.
type RowError struct {
	// Line is the 1-based line number in the input, header included.
	Line int
	// Column is the 0-based column, or -1 when the whole row is at fault.
	Column int
	Err    error
}

func (e *RowError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d column %d: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
