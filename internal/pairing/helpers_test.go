package pairing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"setup-mirrors/internal/catalog"
	"setup-mirrors/internal/fumen"
	"setup-mirrors/internal/mirror"
)

const (
	asymField  = "LLL_______\nL___SS____"
	otherField = "TTT_______\n_T____OO__\nXXXXXX_OOX"
	symField   = "OO______OO\nIIII__IIII"
)

// entry is one row of a test table.
type entry struct {
	id           string
	leftover     string
	build        string
	cover        string
	intermediate bool
	code         string
	success      string
	mirror       string
}

func fieldCode(t *testing.T, field string) string {
	t.Helper()

	code, err := fumen.Encode([]fumen.Page{fumen.FieldPage(fumen.MustParseField(field))})
	require.NoError(t, err)

	return code
}

func mirroredCode(t *testing.T, field string) string {
	t.Helper()

	code, err := fumen.Encode([]fumen.Page{fumen.FieldPage(mirror.Field(fumen.MustParseField(field)))})
	require.NoError(t, err)

	return code
}

func tableText(entries ...entry) string {
	lines := []string{"ID\tLeftover\tBuild\tCover Dependence\tIntermediate\tSetup\tPieces\tA\tB\tPercent\tC\tMirror"}

	for _, e := range entries {
		flag := "0"
		if e.intermediate {
			flag = "1"
		}

		build := e.build
		if build == "" {
			build = "TIO"
		}

		lines = append(lines, strings.Join([]string{
			e.id, e.leftover, build, e.cover, flag, e.code, "", "", "", e.success, "", e.mirror,
		}, "\t"))
	}

	return strings.Join(lines, "\n")
}

func newTable(t *testing.T, entries ...entry) *catalog.Table {
	t.Helper()

	tbl, err := catalog.Read(strings.NewReader(tableText(entries...)))
	require.NoError(t, err)

	return tbl
}

func linkOf(t *testing.T, tbl *catalog.Table, id string) catalog.MirrorLink {
	t.Helper()

	rec, ok := tbl.ByID(id)
	require.True(t, ok, "record %s", id)

	return rec.Mirror
}
