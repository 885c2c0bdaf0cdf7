package fumen

import (
	"fmt"
	"strings"
)

// versionMarker ends the prefix of a v115 code ("v115@", "m115@", "d115@").
const versionMarker = "115@"

// Decode parses a v115 code into its pages. The code may be a bare code or
// a viewer URL that contains one.
func Decode(code string) ([]Page, error) {
	data, err := extract(code)
	if err != nil {
		return nil, err
	}

	v, err := newValues(data)
	if err != nil {
		return nil, err
	}

	var (
		pages    []Page
		prev     Field
		repeat   int
		comment  string
		colorize bool
	)

	for !v.empty() {
		var field Field

		if repeat > 0 {
			field = prev
			repeat--
		} else {
			var changed bool

			field, changed, err = decodeField(v, prev)
			if err != nil {
				return nil, fmt.Errorf("page %d field: %w", len(pages), err)
			}

			if !changed {
				if repeat, err = v.poll(1); err != nil {
					return nil, fmt.Errorf("page %d repeat: %w", len(pages), err)
				}
			}
		}

		actionValue, err := v.poll(actionWidth)
		if err != nil {
			return nil, fmt.Errorf("page %d action: %w", len(pages), err)
		}

		a, err := decodeAction(actionValue)
		if err != nil {
			return nil, fmt.Errorf("page %d action: %w", len(pages), err)
		}

		if a.comment {
			if comment, err = decodeComment(v); err != nil {
				return nil, fmt.Errorf("page %d comment: %w", len(pages), err)
			}
		}

		if len(pages) == 0 {
			colorize = a.colorize
		}

		page := Page{
			Field:     field,
			Operation: a.op,
			Comment:   comment,
			Flags: Flags{
				Lock:     a.lock,
				Rise:     a.rise,
				Mirror:   a.mirror,
				Colorize: colorize,
			},
		}

		if prev, err = page.next(); err != nil {
			return nil, fmt.Errorf("page %d lock: %w", len(pages), err)
		}

		pages = append(pages, page)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrMalformed)
	}

	return pages, nil
}

// extract returns the page data of a code with separators removed.
func extract(code string) (string, error) {
	data := code
	if i := strings.IndexByte(data, '&'); i >= 0 {
		data = data[:i]
	}

	i := strings.Index(data, versionMarker)
	if i < 1 || strings.IndexByte("vmd", data[i-1]) < 0 {
		return "", fmt.Errorf("%w: %.16q", ErrUnsupportedVersion, code)
	}

	data = data[i+len(versionMarker):]

	return strings.Map(func(r rune) rune {
		if r == '?' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}

		return r
	}, data), nil
}

// decodeField applies one page of run-length field diffs to prev.
// changed is false when the page repeats prev exactly.
func decodeField(v *values, prev Field) (Field, bool, error) {
	f := prev
	changed := true

	for i := 0; i < fieldBlocks; {
		run, err := v.poll(fieldDiffWidth)
		if err != nil {
			return Field{}, false, err
		}

		diff := run / fieldBlocks
		count := run%fieldBlocks + 1

		if diff == 8 && count == fieldBlocks {
			changed = false
		}

		if i+count > fieldBlocks {
			return Field{}, false, fmt.Errorf("%w: field run overflows at %d", ErrMalformed, i)
		}

		for j := i; j < i+count; j++ {
			b := int(f.cells[j]) + diff - 8
			if b < 0 || b >= blockCount {
				return Field{}, false, fmt.Errorf("%w: block value %d at %d", ErrMalformed, b, j)
			}

			f.cells[j] = Block(b)
		}

		i += count
	}

	return f, changed, nil
}
