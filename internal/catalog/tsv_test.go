package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "ID\tLeftover\tBuild\tCover Dependence\tIntermediate\tSetup\tPieces\tNotes\tSolve\tPercent\tSee\tMirror"

func row(cols ...string) string {
	return strings.Join(cols, "\t")
}

func table(rows ...string) string {
	return strings.Join(append([]string{header}, rows...), "\r\n")
}

func TestRead(t *testing.T) {
	input := table(
		row("1", "LS", "TIO", "[LS]!", "0", "v115@bhzhPeAgH", "TILJ", "note a", "x", "55.50%", "y", ""),
		row("2", "JZ", "TIO", "[JZ]!", "1", "v115@hhzhJeAgH", "TIJL", "", "", "54.60%", "", "NULL"),
		"",
		row("3", "IO", "IO", "*p4", "", "v115@vhAAgH", "", "", "", "100%", "", "1", "extra"),
	)

	tbl, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, header, tbl.Header)
	require.Equal(t, 3, tbl.Len())

	first := tbl.At(0)
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "LS", first.Leftover)
	assert.Equal(t, "TIO", first.Build)
	assert.Equal(t, 5, first.CoverLength())
	assert.False(t, first.Intermediate)
	assert.Equal(t, "v115@bhzhPeAgH", first.SetupCode)
	assert.Equal(t, "TILJ", first.PieceSequence)
	assert.Equal(t, Percent(5550), first.Success)
	assert.True(t, first.Mirror.IsUnset())

	second := tbl.At(1)
	assert.True(t, second.Intermediate)
	assert.Equal(t, NoMirrorNeeded, second.Mirror)

	third := tbl.At(2)
	assert.Equal(t, 5, third.Line, "blank lines still count")
	assert.Equal(t, Paired("1"), third.Mirror)

	i, ok := tbl.Index("3")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	rec, ok := tbl.ByID("2")
	require.True(t, ok)
	assert.Same(t, second, rec)

	assert.Equal(t, []string{"v115@bhzhPeAgH", "v115@hhzhJeAgH", "v115@vhAAgH"}, tbl.Codes())
}

func TestRead_Errors(t *testing.T) {
	valid := row("1", "LS", "TIO", "", "0", "v115@vhAAgH", "", "", "", "50.00%", "", "")

	tests := []struct {
		name   string
		input  string
		err    error
		line   int
		column int
	}{
		{
			name:   "short row",
			input:  table(valid, row("2", "LS", "TIO")),
			err:    ErrColumnCount,
			line:   3,
			column: -1,
		},
		{
			name:   "bad percent",
			input:  table(row("1", "LS", "TIO", "", "0", "v115@vhAAgH", "", "", "", "fifty", "", "")),
			err:    ErrInvalidPercent,
			line:   2,
			column: ColumnSuccess,
		},
		{
			name:   "bad flag",
			input:  table(row("1", "LS", "TIO", "", "maybe", "v115@vhAAgH", "", "", "", "50.00%", "", "")),
			err:    ErrInvalidFlag,
			line:   2,
			column: ColumnIntermediate,
		},
		{
			name:   "missing id",
			input:  table(row(" ", "LS", "TIO", "", "0", "v115@vhAAgH", "", "", "", "50.00%", "", "")),
			err:    ErrMissingID,
			line:   2,
			column: ColumnID,
		},
		{
			name:   "duplicate id",
			input:  table(valid, valid),
			err:    ErrDuplicateID,
			line:   3,
			column: ColumnID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.err)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.line, rowErr.Line)
			assert.Equal(t, tt.column, rowErr.Column)
		})
	}
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMissingHeader)

	tbl, err := Read(strings.NewReader(header + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestWrite(t *testing.T) {
	input := table(
		row("1", "LS", "TIO", "[LS]!", "0", "v115@bhzhPeAgH", "TILJ", "note a", "x", "55.50%", "y", ""),
		row("2", "JZ", "TIO", "[JZ]!", "0", "v115@hhzhJeAgH", "TIJL", "", "", "54.60%", "", ""),
		row("3", "LL", "TIO", "", "0", "v115@vhAAgH", "", "", "", "10.00%", "", "", "tail"),
		row("4", "IO", "IO", "", "0", "v115@vhAAgH", "", "", "", "10.00%", "", "stale"),
	)

	tbl, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	tbl.Pair(0, 1)
	tbl.At(2).Mirror = NeedsMirror
	tbl.At(3).Mirror = MirrorLink{}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))

	expected := strings.Join([]string{
		header,
		row("1", "LS", "TIO", "[LS]!", "0", "v115@bhzhPeAgH", "TILJ", "note a", "x", "55.50%", "y", "2"),
		row("2", "JZ", "TIO", "[JZ]!", "0", "v115@hhzhJeAgH", "TIJL", "", "", "54.60%", "", "1"),
		row("3", "LL", "TIO", "", "0", "v115@vhAAgH", "", "", "", "10.00%", "", "Need Mirror", "tail"),
		row("4", "IO", "IO", "", "0", "v115@vhAAgH", "", "", "", "10.00%", "", ""),
	}, "\n") + "\n"

	assert.Equal(t, expected, buf.String())
}

func TestRecord_Columns_Pads(t *testing.T) {
	rec := &Record{ID: "9", Mirror: NoMirrorNeeded, columns: []string{"9"}}

	cols := rec.Columns()
	require.Len(t, cols, MinColumns)
	assert.Equal(t, "NULL", cols[ColumnMirror])
	assert.Equal(t, []string{"9"}, rec.columns, "raw columns must not change")
}

func TestRecord_MultiStage(t *testing.T) {
	rec := &Record{Build: "TIO;LJ"}
	assert.True(t, rec.MultiStage(";"))
	assert.False(t, rec.MultiStage(""))
	assert.False(t, (&Record{Build: "TIO"}).MultiStage(";"))
}
