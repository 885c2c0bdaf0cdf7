package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	separator = "\t"
	// maxLineSize bounds a single row; long multi-page codes can be large.
	maxLineSize = 1 << 20
)

// Table is a parsed setup table.
type Table struct {
	Header string
	*Store
}

// Read parses a tab-separated table. The first line is the header; blank
// lines are skipped. The first malformed row stops reading with a *RowError.
func Read(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		header    string
		hasHeader bool
		records   []*Record
	)

	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimRight(scanner.Text(), "\r")
		if !hasHeader {
			header = text
			hasHeader = true

			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := ParseRecord(line, strings.Split(text, separator))
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}

	if !hasHeader {
		return nil, ErrMissingHeader
	}

	store, err := NewStore(records)
	if err != nil {
		return nil, err
	}

	return &Table{Header: header, Store: store}, nil
}

// Write writes the header and every record in order, one row per line.
func Write(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range t.Len() {
		rec := t.At(i)
		if _, err := fmt.Fprintln(bw, strings.Join(rec.Columns(), separator)); err != nil {
			return fmt.Errorf("writing record %s: %w", rec.ID, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}
