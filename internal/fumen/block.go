package fumen

import (
	"fmt"

	"setup-mirrors/internal/piece"
)

// Block is the content of a single field cell.
type Block uint8

// Block values match the numbers used by the v115 format.
const (
	Empty Block = iota
	BlockI
	BlockL
	BlockO
	BlockZ
	BlockT
	BlockJ
	BlockS
	Gray

	blockCount = int(iota)
)

const blockLetters = "_ILOZTJSX"

// String returns the letter for the block ("_" for empty, "X" for gray).
func (b Block) String() string {
	if int(b) >= blockCount {
		return fmt.Sprintf("Block(%d)", b)
	}

	return blockLetters[b : b+1]
}

// Piece returns the piece type of a mino block.
func (b Block) Piece() (piece.Piece, bool) {
	switch b {
	case BlockI:
		return piece.I, true
	case BlockL:
		return piece.L, true
	case BlockO:
		return piece.O, true
	case BlockZ:
		return piece.Z, true
	case BlockT:
		return piece.T, true
	case BlockJ:
		return piece.J, true
	case BlockS:
		return piece.S, true
	default:
		return 0, false
	}
}

// BlockOf returns the block drawn for piece p.
func BlockOf(p piece.Piece) Block {
	switch p {
	case piece.I:
		return BlockI
	case piece.L:
		return BlockL
	case piece.O:
		return BlockO
	case piece.Z:
		return BlockZ
	case piece.T:
		return BlockT
	case piece.J:
		return BlockJ
	case piece.S:
		return BlockS
	default:
		return Empty
	}
}

func blockFromLetter(c byte) (Block, bool) {
	for i := range blockCount {
		if blockLetters[i] == c {
			return Block(i), true
		}
	}

	return Empty, false
}
