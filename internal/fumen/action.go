package fumen

import (
	"fmt"

	"setup-mirrors/internal/piece"
)

// action is the per-page record that follows the field data.
type action struct {
	op       *Operation
	rise     bool
	mirror   bool
	colorize bool
	comment  bool
	lock     bool
}

const (
	actionWidth = 3
	// fieldDiffWidth is the number of digits of one run of field diffs.
	fieldDiffWidth = 2
)

func boolValue(b bool) int {
	if b {
		return 1
	}

	return 0
}

func encodeAction(a action) (int, error) {
	blockNumber := int(Empty)
	rotation := int(Reverse)
	position := 0

	if a.op != nil {
		blockNumber = int(BlockOf(a.op.Piece))
		rotation = int(a.op.Rotation)
		x, y := legacyCoordinate(*a.op)
		position = (Height-y-1)*Width + x

		if x < 0 || x >= Width || position < 0 || position >= fieldBlocks {
			return 0, fmt.Errorf("%w: %s %s at (%d,%d)", ErrOutOfField, a.op.Piece, a.op.Rotation, a.op.X, a.op.Y)
		}
	}

	value := boolValue(!a.lock)
	value = value*2 + boolValue(a.comment)
	value = value*2 + boolValue(a.colorize)
	value = value*2 + boolValue(a.mirror)
	value = value*2 + boolValue(a.rise)
	value = value*fieldBlocks + position
	value = value*4 + rotation
	value = value*8 + blockNumber

	return value, nil
}

func decodeAction(value int) (action, error) {
	blockNumber := value % 8
	value /= 8
	rotation := Rotation(value % 4)
	value /= 4
	position := value % fieldBlocks
	value /= fieldBlocks

	var a action

	a.rise = value%2 == 1
	value /= 2
	a.mirror = value%2 == 1
	value /= 2
	a.colorize = value%2 == 1
	value /= 2
	a.comment = value%2 == 1
	value /= 2
	a.lock = value%2 == 0

	if blockNumber == int(Empty) {
		return a, nil
	}

	p, ok := Block(blockNumber).Piece()
	if !ok {
		return action{}, fmt.Errorf("%w: operation block %d", ErrMalformed, blockNumber)
	}

	op := Operation{
		Piece:    p,
		Rotation: rotation,
		X:        position % Width,
		Y:        Height - position/Width - 1,
	}
	op.X, op.Y = centerCoordinate(op)
	a.op = &op

	return a, nil
}

// legacyCoordinate converts a rotation center into the cell the v115 format
// stores for O, I, S and Z pieces.
func legacyCoordinate(o Operation) (int, int) {
	x, y := o.X, o.Y

	switch {
	case o.Piece == piece.O && o.Rotation == Left:
		x, y = x-1, y+1
	case o.Piece == piece.O && o.Rotation == Reverse:
		x--
	case o.Piece == piece.O && o.Rotation == Spawn:
		y++
	case o.Piece == piece.I && o.Rotation == Reverse:
		x--
	case o.Piece == piece.I && o.Rotation == Left:
		y++
	case o.Piece == piece.S && o.Rotation == Spawn:
		y++
	case o.Piece == piece.S && o.Rotation == Right:
		x++
	case o.Piece == piece.Z && o.Rotation == Spawn:
		y++
	case o.Piece == piece.Z && o.Rotation == Left:
		x--
	}

	return x, y
}

// centerCoordinate is the inverse of legacyCoordinate.
func centerCoordinate(o Operation) (int, int) {
	x, y := o.X, o.Y

	switch {
	case o.Piece == piece.O && o.Rotation == Left:
		x, y = x+1, y-1
	case o.Piece == piece.O && o.Rotation == Reverse:
		x++
	case o.Piece == piece.O && o.Rotation == Spawn:
		y--
	case o.Piece == piece.I && o.Rotation == Reverse:
		x++
	case o.Piece == piece.I && o.Rotation == Left:
		y--
	case o.Piece == piece.S && o.Rotation == Spawn:
		y--
	case o.Piece == piece.S && o.Rotation == Right:
		x--
	case o.Piece == piece.Z && o.Rotation == Spawn:
		y--
	case o.Piece == piece.Z && o.Rotation == Left:
		x++
	}

	return x, y
}
