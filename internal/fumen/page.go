package fumen

import (
	"fmt"

	"setup-mirrors/internal/piece"
)

//go:generate go tool stringer -type=Rotation -output=rotation_string.go

// Rotation is the orientation of a placed piece. The values are the
// numbers used by the v115 format.
type Rotation int

const (
	Reverse Rotation = iota
	Right
	Spawn
	Left
)

// Operation is a piece placement: the piece, its rotation and the field
// coordinate of its rotation center.
type Operation struct {
	Piece    piece.Piece
	Rotation Rotation
	X, Y     int
}

// Flags are the per-page switches of the v115 format.
type Flags struct {
	// Lock places the operation piece and clears lines before the next page.
	Lock bool
	// Rise pushes the garbage row up when the page is locked.
	Rise bool
	// Mirror flips the field when the page is locked.
	Mirror bool
	// Colorize selects guideline colors. It is written on every page but
	// decoding takes the value of the first page for all of them.
	Colorize bool
}

// DefaultFlags are the flags of a plain page: locked and colorized.
var DefaultFlags = Flags{Lock: true, Colorize: true}

// Page is a single frame of a code.
type Page struct {
	Field     Field
	Operation *Operation
	Comment   string
	Flags     Flags
}

// FieldPage returns a page that shows f with no operation and default flags.
func FieldPage(f Field) Page {
	return Page{Field: f, Flags: DefaultFlags}
}

// spawnShapes are block offsets from the rotation center in spawn orientation.
var spawnShapes = map[piece.Piece][4][2]int{
	piece.I: {{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
	piece.T: {{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
	piece.O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	piece.L: {{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
	piece.J: {{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
	piece.S: {{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
	piece.Z: {{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
}

// Blocks returns the field coordinates covered by the operation.
func (o Operation) Blocks() [4][2]int {
	shape := spawnShapes[o.Piece]

	var out [4][2]int

	for i, p := range shape {
		dx, dy := p[0], p[1]

		switch o.Rotation {
		case Right:
			dx, dy = dy, -dx
		case Reverse:
			dx, dy = -dx, -dy
		case Left:
			dx, dy = -dy, dx
		case Spawn:
		}

		out[i] = [2]int{o.X + dx, o.Y + dy}
	}

	return out
}

// Put draws the operation's piece into the playfield.
func (f *Field) Put(o Operation) error {
	if !o.Piece.Valid() {
		return fmt.Errorf("%w: invalid piece %v", ErrMalformed, o.Piece)
	}

	blocks := o.Blocks()
	for _, b := range blocks {
		if b[0] < 0 || b[0] >= Width || b[1] < 0 || b[1] >= Height {
			return fmt.Errorf("%w: %s %s at (%d,%d)", ErrOutOfField, o.Piece, o.Rotation, o.X, o.Y)
		}
	}

	for _, b := range blocks {
		f.Set(b[0], b[1], BlockOf(o.Piece))
	}

	return nil
}

// next returns the field the following page is diffed against.
func (p *Page) next() (Field, error) {
	f := p.Field
	if !p.Flags.Lock {
		return f, nil
	}

	if p.Operation != nil {
		if err := f.Put(*p.Operation); err != nil {
			return Field{}, err
		}
	}

	f.ClearLines()

	if p.Flags.Rise {
		f.RiseGarbage()
	}

	if p.Flags.Mirror {
		f.Reverse()
	}

	return f, nil
}
