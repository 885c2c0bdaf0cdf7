package fumen

import (
	"fmt"
	"strings"
)

const (
	// Width is the number of cells in a row.
	Width = 10
	// Height is the number of playfield rows, excluding the garbage row.
	Height = 23
	// GarbageRow is the y coordinate of the garbage row below the playfield.
	GarbageRow = -1

	fieldRows   = Height + 1
	fieldBlocks = fieldRows * Width
)

// Field is a board: Height playfield rows and one garbage row.
// Coordinates are x=0..Width-1 from the left and y=0..Height-1 from the
// bottom, with y=GarbageRow for the garbage row. The zero value is an
// empty field and two fields are structurally equal when they are ==.
type Field struct {
	// cells are stored top row first, the garbage row last.
	cells [fieldBlocks]Block
}

func cellIndex(x, y int) int {
	return (Height-1-y)*Width + x
}

func inField(x, y int) bool {
	return x >= 0 && x < Width && y >= GarbageRow && y < Height
}

// At returns the block at (x, y). Coordinates outside the field are empty.
func (f *Field) At(x, y int) Block {
	if !inField(x, y) {
		return Empty
	}

	return f.cells[cellIndex(x, y)]
}

// Set stores b at (x, y). Coordinates outside the field are ignored.
func (f *Field) Set(x, y int, b Block) {
	if !inField(x, y) {
		return
	}

	f.cells[cellIndex(x, y)] = b
}

// Row returns a copy of row y, left to right.
func (f *Field) Row(y int) [Width]Block {
	var row [Width]Block
	if !inField(0, y) {
		return row
	}

	i := cellIndex(0, y)
	copy(row[:], f.cells[i:i+Width])

	return row
}

// SetRow replaces row y.
func (f *Field) SetRow(y int, row [Width]Block) {
	if !inField(0, y) {
		return
	}

	i := cellIndex(0, y)
	copy(f.cells[i:i+Width], row[:])
}

// IsEmpty reports whether no cell is occupied.
func (f *Field) IsEmpty() bool {
	return *f == Field{}
}

// Reverse flips every playfield row left to right without relabeling the
// pieces. This is what the mirror flag of a locked page does.
func (f *Field) Reverse() {
	for y := 0; y < Height; y++ {
		row := f.Row(y)
		for l, r := 0, Width-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}

		f.SetRow(y, row)
	}
}

// ClearLines removes full playfield rows and drops the rows above them.
// It returns the number of cleared rows.
func (f *Field) ClearLines() int {
	var kept [][Width]Block

	for y := 0; y < Height; y++ {
		row := f.Row(y)
		if !isFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := Height - len(kept)
	if cleared == 0 {
		return 0
	}

	for y := 0; y < Height; y++ {
		var row [Width]Block
		if y < len(kept) {
			row = kept[y]
		}

		f.SetRow(y, row)
	}

	return cleared
}

// RiseGarbage pushes the garbage row into the bottom of the playfield.
// The top playfield row is lost and the garbage row becomes empty.
func (f *Field) RiseGarbage() {
	for y := Height - 1; y > 0; y-- {
		f.SetRow(y, f.Row(y-1))
	}

	f.SetRow(0, f.Row(GarbageRow))
	f.SetRow(GarbageRow, [Width]Block{})
}

func isFull(row [Width]Block) bool {
	for _, b := range row {
		if b == Empty {
			return false
		}
	}

	return true
}

// ParseField builds a field from rows of block letters ("_ILOZTJSX"), top
// row first. The last line is the bottom playfield row. Empty lines are
// ignored and short lines are padded with empty cells.
func ParseField(s string) (Field, error) {
	var lines []string

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > Height {
		return Field{}, fmt.Errorf("%w: %d rows exceed field height %d", ErrMalformed, len(lines), Height)
	}

	var f Field

	for i, line := range lines {
		if len(line) > Width {
			return Field{}, fmt.Errorf("%w: row %q is wider than %d", ErrMalformed, line, Width)
		}

		y := len(lines) - 1 - i
		for x := 0; x < len(line); x++ {
			b, ok := blockFromLetter(line[x])
			if !ok {
				return Field{}, fmt.Errorf("%w: unknown block %q in row %q", ErrMalformed, line[x], line)
			}

			f.Set(x, y, b)
		}
	}

	return f, nil
}

// MustParseField is ParseField that panics on error. For tests and fixed tables.
func MustParseField(s string) Field {
	f, err := ParseField(s)
	if err != nil {
		panic(err)
	}

	return f
}

// String renders the playfield from its highest occupied row down to y=0,
// followed by the garbage row when it is not empty.
func (f *Field) String() string {
	top := 0

	for y := Height - 1; y >= 0; y-- {
		row := f.Row(y)
		if row != ([Width]Block{}) {
			top = y
			break
		}
	}

	var b strings.Builder

	for y := top; y >= 0; y-- {
		writeRow(&b, f.Row(y))

		if y > 0 {
			b.WriteByte('\n')
		}
	}

	if garbage := f.Row(GarbageRow); garbage != ([Width]Block{}) {
		b.WriteByte('\n')
		writeRow(&b, garbage)
	}

	return b.String()
}

func writeRow(b *strings.Builder, row [Width]Block) {
	for _, c := range row {
		b.WriteString(c.String())
	}
}
