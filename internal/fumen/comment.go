package fumen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// commentTable holds the printable ASCII characters a comment is stored in.
const commentTable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

const (
	commentBase      = len(commentTable) + 1
	commentQuad      = 4
	commentQuadWidth = 5
	maxCommentLength = 4095
)

// escapeComment follows the legacy JavaScript escape function: letters,
// digits and @*_+-./ are kept, other UTF-16 units become %XX or %uXXXX.
func escapeComment(s string) string {
	var b strings.Builder

	for _, u := range utf16.Encode([]rune(s)) {
		switch {
		case u < 0x80 && isEscapeSafe(byte(u)):
			b.WriteByte(byte(u))
		case u < 0x100:
			fmt.Fprintf(&b, "%%%02X", u)
		default:
			fmt.Fprintf(&b, "%%u%04X", u)
		}
	}

	return b.String()
}

func isEscapeSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	default:
		return strings.IndexByte("@*_+-./", c) >= 0
	}
}

// unescapeComment reverses escapeComment. Malformed escapes are kept literally.
func unescapeComment(s string) string {
	var units []uint16

	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+5 < len(s) && s[i+1] == 'u' {
				if v, err := strconv.ParseUint(s[i+2:i+6], 16, 16); err == nil {
					units = append(units, uint16(v))
					i += 5

					continue
				}
			}

			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					units = append(units, uint16(v))
					i += 2

					continue
				}
			}
		}

		units = append(units, uint16(s[i]))
	}

	return string(utf16.Decode(units))
}

func encodeComment(w *valueWriter, text string) error {
	escaped := escapeComment(text)
	if len(escaped) > maxCommentLength {
		return fmt.Errorf("%w: %d escaped characters", ErrCommentTooLong, len(escaped))
	}

	w.push(len(escaped), 2)

	for start := 0; start < len(escaped); start += commentQuad {
		value := 0
		scale := 1

		for i := start; i < start+commentQuad && i < len(escaped); i++ {
			value += strings.IndexByte(commentTable, escaped[i]) * scale
			scale *= commentBase
		}

		w.push(value, commentQuadWidth)
	}

	return nil
}

func decodeComment(v *values) (string, error) {
	length, err := v.poll(2)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	for range (length + commentQuad - 1) / commentQuad {
		value, err := v.poll(commentQuadWidth)
		if err != nil {
			return "", err
		}

		for range commentQuad {
			c := value % commentBase
			value /= commentBase

			if c < len(commentTable) {
				b.WriteByte(commentTable[c])
			}
		}
	}

	escaped := b.String()
	if len(escaped) < length {
		return "", fmt.Errorf("%w: comment shorter than %d characters", ErrMalformed, length)
	}

	return unescapeComment(escaped[:length]), nil
}
