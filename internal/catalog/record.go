package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Column positions in the setup table.
const (
	ColumnID              = 0
	ColumnLeftover        = 1
	ColumnBuild           = 2
	ColumnCoverDependency = 3
	ColumnIntermediate    = 4
	ColumnSetup           = 5
	ColumnPieceSequence   = 6
	ColumnSuccess         = 9
	ColumnMirror          = 11

	// MinColumns is the number of columns a row needs to reach the mirror column.
	MinColumns = ColumnMirror + 1
)

// Record is one row of the setup table.
type Record struct {
	// Line is the 1-based line of the row in the input, header included.
	Line int

	ID              string
	Leftover        string
	Build           string
	CoverDependency string
	Intermediate    bool
	SetupCode       string
	PieceSequence   string
	Success         Percent
	Mirror          MirrorLink

	// columns are the raw cells, kept for passthrough on output.
	columns []string
}

// ParseRecord parses the columns of one row.
func ParseRecord(line int, columns []string) (*Record, error) {
	if len(columns) < MinColumns {
		return nil, &RowError{
			Line:   line,
			Column: -1,
			Err:    fmt.Errorf("%w: got %d, need %d", ErrColumnCount, len(columns), MinColumns),
		}
	}

	id := strings.TrimSpace(columns[ColumnID])
	if id == "" {
		return nil, &RowError{Line: line, Column: ColumnID, Err: ErrMissingID}
	}

	intermediate, err := parseFlag(columns[ColumnIntermediate])
	if err != nil {
		return nil, &RowError{Line: line, Column: ColumnIntermediate, Err: err}
	}

	success, err := ParsePercent(columns[ColumnSuccess])
	if err != nil {
		return nil, &RowError{Line: line, Column: ColumnSuccess, Err: err}
	}

	return &Record{
		Line:            line,
		ID:              id,
		Leftover:        columns[ColumnLeftover],
		Build:           columns[ColumnBuild],
		CoverDependency: columns[ColumnCoverDependency],
		Intermediate:    intermediate,
		SetupCode:       strings.TrimSpace(columns[ColumnSetup]),
		PieceSequence:   columns[ColumnPieceSequence],
		Success:         success,
		Mirror:          ParseMirrorLink(columns[ColumnMirror]),
		columns:         slices.Clone(columns),
	}, nil
}

func parseFlag(s string) (bool, error) {
	switch text := strings.TrimSpace(s); strings.ToLower(text) {
	case "":
		return false, nil
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidFlag, s)
		}

		return v, nil
	}
}

// CoverLength is the length of the cover dependency, the only part of it
// that pairing compares.
func (r *Record) CoverLength() int {
	return utf8.RuneCountInString(r.CoverDependency)
}

// MultiStage reports whether the build is split into stages by sep.
func (r *Record) MultiStage(sep string) bool {
	return sep != "" && strings.Contains(r.Build, sep)
}

// Columns returns the row as written to the output table: the raw cells
// with the mirror column replaced by the current link.
func (r *Record) Columns() []string {
	cols := slices.Clone(r.columns)
	for len(cols) < MinColumns {
		cols = append(cols, "")
	}

	cols[ColumnMirror] = r.Mirror.Token()

	return cols
}
