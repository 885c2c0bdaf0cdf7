package fumen

import (
	"fmt"
	"strings"
)

const (
	versionPrefix = "v115@"
	// A '?' is inserted after the first headLength characters and then
	// every chunkLength characters.
	headLength  = 42
	chunkLength = 47
)

// Encode turns pages into a v115 code.
func Encode(pages []Page) (string, error) {
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: no pages", ErrMalformed)
	}

	var (
		w           valueWriter
		prev        Field
		prevComment string
	)

	lastRepeat := -1

	for i := range pages {
		p := &pages[i]

		diffs := encodeField(&prev, &p.Field)

		switch {
		case p.Field != prev:
			w.digits = append(w.digits, diffs...)
			lastRepeat = -1
		case lastRepeat < 0 || w.digits[lastRepeat] == tableLength-1:
			w.digits = append(w.digits, diffs...)
			w.push(0, 1)
			lastRepeat = len(w.digits) - 1
		default:
			w.digits[lastRepeat]++
		}

		commentChanged := p.Comment != prevComment

		value, err := encodeAction(action{
			op:       p.Operation,
			rise:     p.Flags.Rise,
			mirror:   p.Flags.Mirror,
			colorize: p.Flags.Colorize,
			comment:  commentChanged,
			lock:     p.Flags.Lock,
		})
		if err != nil {
			return "", fmt.Errorf("page %d action: %w", i, err)
		}

		w.push(value, actionWidth)

		if commentChanged {
			if err := encodeComment(&w, p.Comment); err != nil {
				return "", fmt.Errorf("page %d comment: %w", i, err)
			}

			prevComment = p.Comment
		}

		if prev, err = p.next(); err != nil {
			return "", fmt.Errorf("page %d lock: %w", i, err)
		}
	}

	return versionPrefix + split(w.String()), nil
}

// encodeField returns the run-length diffs that turn prev into cur.
func encodeField(prev, cur *Field) []int {
	var w valueWriter

	record := func(diff, count int) {
		w.push(diff*fieldBlocks+count-1, fieldDiffWidth)
	}

	runDiff := int(cur.cells[0]) - int(prev.cells[0]) + 8
	count := 0

	for i := range fieldBlocks {
		diff := int(cur.cells[i]) - int(prev.cells[i]) + 8
		if diff != runDiff {
			record(runDiff, count)
			runDiff = diff
			count = 0
		}

		count++
	}

	record(runDiff, count)

	return w.digits
}

func split(data string) string {
	if len(data) <= headLength {
		return data
	}

	parts := []string{data[:headLength]}
	for rest := data[headLength:]; rest != ""; {
		n := min(chunkLength, len(rest))
		parts = append(parts, rest[:n])
		rest = rest[n:]
	}

	return strings.Join(parts, "?")
}
