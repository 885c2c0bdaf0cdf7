package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-mirrors/internal/catalog"
)

func TestCheck_Links(t *testing.T) {
	tests := []struct {
		name    string
		entries []entry
		want    map[string][]string
	}{
		{
			name: "reciprocal mirror pair",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "b"},
				{id: "b", leftover: "JZ", code: mirroredCode(t, asymField), success: "50.50%", mirror: "a"},
			},
		},
		{
			name: "self-symmetric NULL",
			entries: []entry{
				{id: "s", leftover: "IO", build: "IO", code: fieldCode(t, symField), success: "80.00%", mirror: "NULL"},
			},
		},
		{
			name: "self link on symmetric board with asymmetric build",
			entries: []entry{
				{id: "s", leftover: "IO", build: "LS", code: fieldCode(t, symField), success: "80.00%", mirror: "s"},
			},
		},
		{
			name: "NULL on asymmetric board",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "NULL"},
			},
			want: map[string][]string{"a": {CodeNullAsymmetric}},
		},
		{
			name: "NULL with asymmetric leftover",
			entries: []entry{
				{id: "s", leftover: "LS", build: "IO", code: fieldCode(t, symField), success: "80.00%", mirror: "NULL"},
			},
			want: map[string][]string{"s": {CodeNullAsymmetric}},
		},
		{
			name: "one way link",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "b"},
				{id: "b", leftover: "JZ", code: mirroredCode(t, asymField), success: "50.00%"},
			},
			want: map[string][]string{"a": {CodeNotReciprocal}},
		},
		{
			name: "links to different records",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "b"},
				{id: "b", leftover: "JZ", code: mirroredCode(t, asymField), success: "50.00%", mirror: "Need Mirror"},
			},
			want: map[string][]string{"a": {CodeNotReciprocal}},
		},
		{
			name: "partner missing from catalog",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "77"},
			},
			want: map[string][]string{"a": {CodeDanglingLink}},
		},
		{
			name: "partner shows another board",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "b"},
				{id: "b", leftover: "JZ", code: fieldCode(t, otherField), success: "50.00%", mirror: "a"},
			},
			want: map[string][]string{"a": {CodeNotMirror}},
		},
		{
			name: "partner beyond tolerance",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "b"},
				{id: "b", leftover: "JZ", code: mirroredCode(t, asymField), success: "48.99%", mirror: "a"},
			},
			want: map[string][]string{"a": {CodeNotMirror}},
		},
		{
			name: "self link that should be NULL",
			entries: []entry{
				{id: "s", leftover: "IO", build: "IO", code: fieldCode(t, symField), success: "80.00%", mirror: "s"},
			},
			want: map[string][]string{"s": {CodeSelfLinkNull}},
		},
		{
			name: "Need Mirror with mirror in catalog",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "Need Mirror"},
				{id: "b", leftover: "JZ", code: mirroredCode(t, asymField), success: "50.00%"},
			},
			want: map[string][]string{"a": {CodeMirrorAvailable}},
		},
		{
			name: "Need Mirror with mirror already paired",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "Need Mirror"},
				{id: "b", leftover: "JZ", code: mirroredCode(t, asymField), success: "50.00%", mirror: "c"},
				{id: "c", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "b"},
			},
		},
		{
			name: "Need Mirror with only misfits",
			entries: []entry{
				{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "Need Mirror"},
				{id: "b", leftover: "LS", code: mirroredCode(t, asymField), success: "50.00%"},
			},
		},
		{
			name: "excluded records are not checked",
			entries: []entry{
				{id: "i", leftover: "LS", intermediate: true, code: fieldCode(t, asymField), success: "50.00%", mirror: "NULL"},
				{id: "m", leftover: "LS", build: "TIO;LJ", code: fieldCode(t, asymField), success: "50.00%", mirror: "77"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newTable(t, tt.entries...)

			res := Check(tbl.Store, Options{})

			got := map[string][]string{}
			for _, w := range res.Diagnostics.Warnings {
				got[w.RecordID] = append(got[w.RecordID], w.Code)
			}

			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}

			assert.Equal(t, len(res.Diagnostics.Warnings), res.Summary.Problems)
			assert.False(t, res.Diagnostics.HasErrors())
		})
	}
}

func TestCheck_Suggestions(t *testing.T) {
	tbl := newTable(t,
		entry{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "b"},
		entry{id: "b", leftover: "LS", cover: "abc", code: fieldCode(t, otherField), success: "50.00%", mirror: "a"},
		entry{id: "c", leftover: "LS", code: fieldCode(t, otherField), success: "50.00%", mirror: "Need Mirror"},
		entry{id: "d", leftover: "JZ", code: mirroredCode(t, otherField), success: "50.00%"},
		entry{id: "e", leftover: "JZ", code: mirroredCode(t, otherField), success: "50.00%", mirror: "Need Mirror"},
	)

	res := Check(tbl.Store, Options{})

	notMirror := res.Diagnostics.ByCode(CodeNotMirror)
	require.Len(t, notMirror, 1)
	assert.Equal(t, "a", notMirror[0].RecordID)
	assert.Equal(t, []string{
		"b: board is not the mirror",
		"b: cover length 3, want 0",
	}, notMirror[0].Suggestions)

	available := res.Diagnostics.ByCode(CodeMirrorAvailable)
	require.Len(t, available, 2)
	assert.Equal(t, "c", available[0].RecordID)
	assert.Equal(t, []string{"d", "e"}, available[0].Suggestions)
	assert.Equal(t, "e", available[1].RecordID)
	assert.Equal(t, []string{"c"}, available[1].Suggestions)
}

func TestCheck_CodecFailure(t *testing.T) {
	tbl := newTable(t,
		entry{id: "bad", leftover: "LS", code: "not a setup code", success: "50.00%", mirror: "NULL"},
		entry{id: "unset", leftover: "LS", code: "not a setup code", success: "50.00%"},
	)

	res := Check(tbl.Store, Options{})

	assert.Equal(t, CheckSummary{Records: 2, Unset: 1, Checked: 1, CodecFailures: 1}, res.Summary)

	failures := res.Diagnostics.ByCode(CodeCodecFailure)
	require.Len(t, failures, 1)
	assert.Equal(t, "bad", failures[0].RecordID)
	assert.True(t, res.Diagnostics.HasErrors())
}

func TestCheck_LeavesLinksAlone(t *testing.T) {
	entries := []entry{
		{id: "a", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "NULL"},
		{id: "b", leftover: "JZ", code: mirroredCode(t, asymField), success: "50.00%"},
		{id: "c", leftover: "LS", code: fieldCode(t, asymField), success: "50.00%", mirror: "Need Mirror"},
		{id: "d", leftover: "IO", intermediate: true, code: fieldCode(t, symField), success: "50.00%"},
	}
	tbl := newTable(t, entries...)
	before := linksOf(tbl)

	res := Check(tbl.Store, Options{})

	assert.Equal(t, before, linksOf(tbl))
	assert.Equal(t, CheckSummary{Records: 4, Excluded: 1, Unset: 1, Checked: 2, Problems: 2}, res.Summary)
	assert.Len(t, res.Diagnostics.ByCode(CodeExcluded), 1)
}

func TestCheckSummary_String(t *testing.T) {
	s := CheckSummary{Records: 6, Excluded: 1, Unset: 2, Checked: 3, Problems: 1, CodecFailures: 1}
	assert.Equal(t,
		"6 records: 3 links checked, 1 problems, 1 codec failures, 2 unset, 1 excluded",
		s.String(),
	)
}

func linksOf(tbl *catalog.Table) map[string]catalog.MirrorLink {
	out := make(map[string]catalog.MirrorLink, tbl.Len())
	for _, rec := range tbl.Records() {
		out[rec.ID] = rec.Mirror
	}

	return out
}
