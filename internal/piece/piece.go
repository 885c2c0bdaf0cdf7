package piece

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Piece -output=piece_string.go

// Piece is a tetromino type. The numeric value is the canonical rank,
// so higher pieces sort first.
type Piece int

const (
	_ Piece = iota // zero value is invalid

	O
	Z
	S
	J
	L
	I
	T

	// Count is the number of valid piece types.
	Count = int(iota) - 1
)

// ErrUnknownPiece is returned when a letter does not name a piece.
var ErrUnknownPiece = errors.New("unknown piece")

// All lists the pieces in canonical order.
var All = [Count]Piece{T, I, L, J, S, Z, O}

var mirrors = [...]Piece{
	O: O,
	Z: S,
	S: Z,
	J: L,
	L: J,
	I: I,
	T: T,
}

// Valid reports whether p is one of the seven piece types.
func (p Piece) Valid() bool {
	return p >= O && p <= T
}

// Rank returns the canonical rank (T=7 ... O=1), or 0 for an invalid piece.
func (p Piece) Rank() int {
	if !p.Valid() {
		return 0
	}

	return int(p)
}

// Mirror returns the piece seen in a horizontal mirror.
func (p Piece) Mirror() Piece {
	if !p.Valid() {
		return p
	}

	return mirrors[p]
}

// Letter returns the single letter used in piece sequences.
func (p Piece) Letter() byte {
	if !p.Valid() {
		return '?'
	}

	return p.String()[0]
}

// FromLetter parses a single piece letter.
func FromLetter(c byte) (Piece, error) {
	switch c {
	case 'T':
		return T, nil
	case 'I':
		return I, nil
	case 'L':
		return L, nil
	case 'J':
		return J, nil
	case 'S':
		return S, nil
	case 'Z':
		return Z, nil
	case 'O':
		return O, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPiece, c)
	}
}
