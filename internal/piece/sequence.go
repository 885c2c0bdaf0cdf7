package piece

import (
	"fmt"
	"slices"
	"strings"
)

// Sequence is an ordered list of pieces, such as a queue, a leftover or a build.
type Sequence []Piece

// Parse parses piece letters like "TILJ" into a Sequence.
func Parse(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))

	for i := 0; i < len(s); i++ {
		p, err := FromLetter(s[i])
		if err != nil {
			return nil, fmt.Errorf("parsing %q at %d: %w", s, i, err)
		}

		seq = append(seq, p)
	}

	return seq, nil
}

// String returns the letters of the sequence.
func (s Sequence) String() string {
	var b strings.Builder

	b.Grow(len(s))

	for _, p := range s {
		b.WriteByte(p.Letter())
	}

	return b.String()
}

// Mirror returns a new sequence with every piece mirrored, order preserved.
func (s Sequence) Mirror() Sequence {
	out := make(Sequence, len(s))
	for i, p := range s {
		out[i] = p.Mirror()
	}

	return out
}

// Canonical returns a copy sorted by descending rank.
func (s Sequence) Canonical() Sequence {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b Piece) int {
		return b.Rank() - a.Rank()
	})

	return out
}

// MirrorText mirrors piece letters in s, keeping any other byte as is.
func MirrorText(s string) string {
	b := []byte(s)
	for i, c := range b {
		if p, err := FromLetter(c); err == nil {
			b[i] = p.Mirror().Letter()
		}
	}

	return string(b)
}

// CanonicalText sorts the letters of s by descending rank. Bytes that are
// not piece letters rank below O and keep their relative order.
func CanonicalText(s string) string {
	b := []byte(s)
	slices.SortStableFunc(b, func(x, y byte) int {
		return letterRank(y) - letterRank(x)
	})

	return string(b)
}

// CanonicalMirrorText is CanonicalText(MirrorText(s)), the form a mirrored
// leftover or build takes in the catalog.
func CanonicalMirrorText(s string) string {
	return CanonicalText(MirrorText(s))
}

func letterRank(c byte) int {
	p, err := FromLetter(c)
	if err != nil {
		return 0
	}

	return p.Rank()
}
