package fumen

import (
	"fmt"
	"strings"
)

const (
	encodeTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	tableLength = len(encodeTable)
)

// values is the digit stream of a code being decoded.
type values struct {
	digits []int
	pos    int
}

func newValues(data string) (*values, error) {
	digits := make([]int, 0, len(data))

	for i := 0; i < len(data); i++ {
		d := strings.IndexByte(encodeTable, data[i])
		if d < 0 {
			return nil, fmt.Errorf("%w: invalid character %q at %d", ErrMalformed, data[i], i)
		}

		digits = append(digits, d)
	}

	return &values{digits: digits}, nil
}

func (v *values) empty() bool {
	return v.pos >= len(v.digits)
}

// poll reads a little-endian number of n digits.
func (v *values) poll(n int) (int, error) {
	if v.pos+n > len(v.digits) {
		return 0, fmt.Errorf("%w: unexpected end of data at %d", ErrMalformed, v.pos)
	}

	value := 0
	for i := n - 1; i >= 0; i-- {
		value = value*tableLength + v.digits[v.pos+i]
	}

	v.pos += n

	return value, nil
}

// valueWriter collects digits of a code being encoded.
type valueWriter struct {
	digits []int
}

func (w *valueWriter) push(value, n int) {
	for range n {
		w.digits = append(w.digits, value%tableLength)
		value /= tableLength
	}
}

func (w *valueWriter) String() string {
	var b strings.Builder

	b.Grow(len(w.digits))

	for _, d := range w.digits {
		b.WriteByte(encodeTable[d])
	}

	return b.String()
}
