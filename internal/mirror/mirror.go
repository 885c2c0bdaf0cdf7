package mirror

import (
	"fmt"

	"setup-mirrors/internal/fumen"
)

// Block returns the mirror of a single cell. Empty and gray cells are unchanged.
func Block(b fumen.Block) fumen.Block {
	p, ok := b.Piece()
	if !ok {
		return b
	}

	return fumen.BlockOf(p.Mirror())
}

// Field returns f reflected left to right with pieces relabeled.
// Row order is unchanged and Field(Field(f)) == f.
func Field(f fumen.Field) fumen.Field {
	var out fumen.Field

	for y := fumen.GarbageRow; y < fumen.Height; y++ {
		for x := 0; x < fumen.Width; x++ {
			out.Set(fumen.Width-1-x, y, Block(f.At(x, y)))
		}
	}

	return out
}

// Code decodes code, mirrors the field of every page and re-encodes the
// result as field-only pages. Operations, comments and flags are dropped.
func Code(code string) (string, error) {
	return transform(code, Field)
}

// Canonical re-encodes code as field-only pages without mirroring it.
// Two codes that show the same fields have the same canonical form.
func Canonical(code string) (string, error) {
	return transform(code, func(f fumen.Field) fumen.Field { return f })
}

func transform(code string, fn func(fumen.Field) fumen.Field) (string, error) {
	pages, err := fumen.Decode(code)
	if err != nil {
		return "", fmt.Errorf("decoding %q: %w", code, err)
	}

	out := make([]fumen.Page, len(pages))
	for i, p := range pages {
		out[i] = fumen.FieldPage(fn(p.Field))
	}

	encoded, err := fumen.Encode(out)
	if err != nil {
		return "", fmt.Errorf("encoding %q: %w", code, err)
	}

	return encoded, nil
}
