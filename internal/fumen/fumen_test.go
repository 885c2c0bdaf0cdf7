package fumen

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-mirrors/internal/piece"
)

const (
	pieceT = piece.T
	pieceI = piece.I
	pieceO = piece.O
	pieceS = piece.S
)

func TestDecode_KnownCodes(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		field string
	}{
		{"empty field", "v115@vhAAgH", ""},
		{"I bottom left", "v115@bhzhPeAgH", "IIII______"},
		{"I bottom right", "v115@hhzhJeAgH", "______IIII"},
		{"viewer url", "https://fumen.zui.jp/?v115@bhzhPeAgH", "IIII______"},
		{"split data", "v115@bhz?hPeAgH", "IIII______"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := Decode(tt.code)
			require.NoError(t, err)
			require.Len(t, pages, 1)

			p := pages[0]
			assert.Equal(t, MustParseField(tt.field), p.Field)
			assert.Nil(t, p.Operation)
			assert.Equal(t, DefaultFlags, p.Flags)
			assert.Empty(t, p.Comment)
		})
	}
}

func TestEncode_KnownCodes(t *testing.T) {
	tests := []struct {
		field string
		code  string
	}{
		{"", "v115@vhAAgH"},
		{"IIII______", "v115@bhzhPeAgH"},
		{"______IIII", "v115@hhzhJeAgH"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			code, err := Encode([]Page{FieldPage(MustParseField(tt.field))})
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestEncode_RepeatedPages(t *testing.T) {
	empty := FieldPage(Field{})

	code, err := Encode([]Page{empty, empty})
	require.NoError(t, err)
	assert.Equal(t, "v115@vhBAgHAgH", code, "colorize is written on every page")

	pages, err := Decode(code)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, Field{}, pages[1].Field)
}

func TestRoundTrip(t *testing.T) {
	base := MustParseField(`
		ZZ________
		_ZZ_______
		XXXXXXX_XX
	`)

	withT := base
	require.NoError(t, withT.Put(Operation{Piece: pieceT, Rotation: Spawn, X: 5, Y: 1}))

	many := make([]Page, 70)
	for i := range many {
		many[i] = FieldPage(base)
	}

	tests := []struct {
		name  string
		pages []Page
	}{
		{"single", []Page{FieldPage(base)}},
		{"two fields", []Page{FieldPage(base), FieldPage(withT)}},
		{
			"operation",
			[]Page{
				{Field: base, Operation: &Operation{Piece: pieceT, Rotation: Spawn, X: 5, Y: 1}, Flags: DefaultFlags},
				FieldPage(withT),
			},
		},
		{
			"legacy coordinates",
			[]Page{
				{Field: base, Operation: &Operation{Piece: pieceO, Rotation: Spawn, X: 4, Y: 3}, Flags: DefaultFlags},
				{Field: base, Operation: &Operation{Piece: pieceS, Rotation: Right, X: 8, Y: 4}, Flags: DefaultFlags},
				{Field: base, Operation: &Operation{Piece: pieceI, Rotation: Left, X: 0, Y: 5}, Flags: DefaultFlags},
			},
		},
		{
			"comments",
			[]Page{
				{Field: base, Comment: "TKI 3 base", Flags: DefaultFlags},
				{Field: base, Comment: "TKI 3 base", Flags: DefaultFlags},
				{Field: withT, Comment: "100% ~ é ✓", Flags: DefaultFlags},
			},
		},
		{
			"flags",
			[]Page{
				{Field: base, Flags: Flags{Lock: false, Colorize: true}},
				{Field: base, Flags: Flags{Lock: true, Rise: true, Mirror: true, Colorize: true}},
				FieldPage(base),
			},
		},
		{"long repeat", many},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Encode(tt.pages)
			require.NoError(t, err)

			decoded, err := Decode(code)
			require.NoError(t, err, code)
			require.Equal(t, tt.pages, decoded, "code %s\n%s", code, spew.Sdump(decoded))
		})
	}
}

func TestEncode_SplitsLongData(t *testing.T) {
	var pages []Page

	for x := 0; x < Width; x++ {
		var f Field

		for y := 0; y < 6; y++ {
			f.Set((x+y)%Width, y, Block(1+(x+y)%7))
		}

		pages = append(pages, FieldPage(f))
	}

	code, err := Encode(pages)
	require.NoError(t, err)

	data := strings.TrimPrefix(code, "v115@")
	parts := strings.Split(data, "?")
	require.Greater(t, len(parts), 1)
	assert.Len(t, parts[0], 42)

	for _, part := range parts[1 : len(parts)-1] {
		assert.Len(t, part, 47)
	}

	decoded, err := Decode(code)
	require.NoError(t, err)
	assert.Equal(t, pages, decoded)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		code string
		err  error
	}{
		{"no version", "bhzhPeAgH", ErrUnsupportedVersion},
		{"old version", "v110@7eEfYaAFLDmClcJSAVDEHBEooRBUoAVBUtPNB", ErrUnsupportedVersion},
		{"empty data", "v115@", ErrMalformed},
		{"truncated", "v115@bhzhPe", ErrMalformed},
		{"bad character", "v115@bh!hPeAgH", ErrMalformed},
		{"overflowing run", "v115@bhvh", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.code)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(nil)
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Encode([]Page{{Operation: &Operation{Piece: pieceI, Rotation: Spawn, X: 9, Y: 0}, Flags: DefaultFlags}})
	require.ErrorIs(t, err, ErrOutOfField)

	_, err = Encode([]Page{{Comment: strings.Repeat("é", 1400), Flags: DefaultFlags}})
	require.ErrorIs(t, err, ErrCommentTooLong)
}

func TestEscapeComment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc", "abc"},
		{"a b", "a%20b"},
		{"100%", "100%25"},
		{"é", "%E9"},
		{"✓", "%u2713"},
		{"@*_+-./", "@*_+-./"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			escaped := escapeComment(tt.input)
			assert.Equal(t, tt.expected, escaped)
			assert.Equal(t, tt.input, unescapeComment(escaped))
		})
	}
}
