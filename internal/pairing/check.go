package pairing

import (
	"fmt"

	"setup-mirrors/internal/catalog"
	"setup-mirrors/internal/diagnostic"
)

// Diagnostic codes of a check pass.
const (
	CodeDanglingLink    = "dangling_link"
	CodeNotReciprocal   = "not_reciprocal"
	CodeNotMirror       = "not_mirror"
	CodeSelfLinkNull    = "self_link_should_be_null"
	CodeNullAsymmetric  = "null_not_symmetric"
	CodeMirrorAvailable = "mirror_available"
)

// CheckSummary counts the outcome of a check pass.
type CheckSummary struct {
	Records       int `yaml:"records"`
	Excluded      int `yaml:"excluded"`
	Unset         int `yaml:"unset"`
	Checked       int `yaml:"checked"`
	Problems      int `yaml:"problems"`
	CodecFailures int `yaml:"codec_failures"`
}

// String returns a one line summary.
func (s CheckSummary) String() string {
	return fmt.Sprintf(
		"%d records: %d links checked, %d problems, %d codec failures, %d unset, %d excluded",
		s.Records, s.Checked, s.Problems, s.CodecFailures, s.Unset, s.Excluded,
	)
}

// CheckResult is the outcome of a check pass.
type CheckResult struct {
	Summary     CheckSummary
	Diagnostics diagnostic.Diagnostics
}

// Check verifies the links already in store with the rules a pairing pass
// follows, and reports every broken one as a warning. Nothing is changed.
func Check(store *catalog.Store, opts Options) CheckResult {
	return New(store, opts).Check()
}

// Check verifies every filled mirror column. Unset records are left to Run.
func (m *Matcher) Check() CheckResult {
	var res CheckResult

	res.Summary.Records = m.store.Len()

	for i := range m.store.Len() {
		rec := m.store.At(i)

		switch {
		case m.excluded(rec):
			res.Summary.Excluded++
			res.Diagnostics.AddInfo(CodeExcluded, excludedReason(rec), rec.ID, rec.Line)

			continue
		case rec.Mirror.IsUnset():
			res.Summary.Unset++

			continue
		}

		res.Summary.Checked++

		sig, err := m.signatureOf(i)
		if err != nil {
			res.Summary.CodecFailures++
			m.codecFailure(&res.Diagnostics, rec, err)

			continue
		}

		for _, p := range m.checkLink(i, sig) {
			res.Summary.Problems++
			res.Diagnostics.AddWarning(p.code, p.message, rec.ID, rec.Line, p.suggestions...)
			m.log.Warn().Str("id", rec.ID).Str("code", p.code).Msg(p.message)
		}
	}

	return res
}

type problem struct {
	code        string
	message     string
	suggestions []string
}

func (m *Matcher) checkLink(i int, sig signature) []problem {
	rec := m.store.At(i)

	switch rec.Mirror.Kind() {
	case catalog.LinkNoMirrorNeeded:
		if !sig.selfSymmetric {
			return []problem{{code: CodeNullAsymmetric, message: "marked NULL but the setup is not its own mirror"}}
		}
	case catalog.LinkNeedsMirror:
		if ids := m.available(i, sig); len(ids) > 0 {
			return []problem{{
				code:        CodeMirrorAvailable,
				message:     "marked Need Mirror but the catalog holds a fitting mirror",
				suggestions: ids,
			}}
		}
	case catalog.LinkPaired:
		return m.checkPair(i, sig)
	}

	return nil
}

func (m *Matcher) checkPair(i int, sig signature) []problem {
	rec := m.store.At(i)
	id, _ := rec.Mirror.ID()

	j, ok := m.store.Index(id)
	if !ok {
		return []problem{{code: CodeDanglingLink, message: fmt.Sprintf("linked to %s, which is not in the catalog", id)}}
	}

	partner := m.store.At(j)

	if partner.Mirror != catalog.Paired(rec.ID) {
		return []problem{{
			code:    CodeNotReciprocal,
			message: fmt.Sprintf("linked to %s, which links to %s", id, partner.Mirror),
		}}
	}

	// A reciprocal pair is checked once, from its first record.
	if j < i {
		return nil
	}

	var reasons []string

	if m.corpus[j] != sig.code {
		reasons = append(reasons, fmt.Sprintf("%s: board is not the mirror", partner.ID))
	}

	if reason := m.mismatch(rec, partner, sig.leftover); reason != "" {
		reasons = append(reasons, fmt.Sprintf("%s: %s", partner.ID, reason))
	}

	switch {
	case len(reasons) > 0:
		return []problem{{
			code:        CodeNotMirror,
			message:     fmt.Sprintf("linked to %s, which is not its mirror", id),
			suggestions: reasons,
		}}
	case j == i && sig.selfSymmetric:
		return []problem{{code: CodeSelfLinkNull, message: "linked to itself but its pieces are symmetric too, so it should be NULL"}}
	default:
		return nil
	}
}

// available lists the records that fit as the mirror of record i and are
// still free to take it: record i itself, unset records and records that
// also wait for a mirror.
func (m *Matcher) available(i int, sig signature) []string {
	rec := m.store.At(i)

	var ids []string

	for _, idx := range m.byCode[sig.code] {
		cand := m.store.At(idx)

		switch kind := cand.Mirror.Kind(); {
		case idx == i, kind == catalog.LinkUnset, kind == catalog.LinkNeedsMirror:
		default:
			continue
		}

		if m.mismatch(rec, cand, sig.leftover) == "" {
			ids = append(ids, cand.ID)
		}
	}

	return ids
}
