package pairing

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"setup-mirrors/internal/catalog"
	"setup-mirrors/internal/diagnostic"
	"setup-mirrors/internal/mirror"
	"setup-mirrors/internal/piece"
)

// Tolerance is the largest success rate difference between two mirror records.
const Tolerance = catalog.PercentPoint

// DefaultStageSeparator splits the stages of a multi-stage build.
const DefaultStageSeparator = ";"

// Diagnostic codes.
const (
	CodeUnresolved   = "unresolved_mirror"
	CodeCodecFailure = "codec_failure"
	CodeExcluded     = "excluded_record"
)

// Options configure a pairing pass.
type Options struct {
	// StageSeparator marks multi-stage builds. Empty means DefaultStageSeparator.
	StageSeparator string
	// Logger receives one event per decision. Nil disables logging.
	Logger *zerolog.Logger
}

// Summary counts the outcome of a pass.
type Summary struct {
	Records       int `yaml:"records"`
	Preset        int `yaml:"preset"`
	Excluded      int `yaml:"excluded"`
	Pairs         int `yaml:"pairs"`
	SelfSymmetric int `yaml:"self_symmetric"`
	NeedsMirror   int `yaml:"needs_mirror"`
	Unresolved    int `yaml:"unresolved"`
	CodecFailures int `yaml:"codec_failures"`
}

// String returns a one line summary.
func (s Summary) String() string {
	return fmt.Sprintf(
		"%d records: %d pairs, %d self-symmetric, %d need mirror, %d unresolved, %d codec failures, %d excluded, %d preset",
		s.Records, s.Pairs, s.SelfSymmetric, s.NeedsMirror, s.Unresolved, s.CodecFailures, s.Excluded, s.Preset,
	)
}

// Result is the outcome of a pass.
type Result struct {
	Summary     Summary
	Diagnostics diagnostic.Diagnostics
}

// Matcher runs a pairing or check pass over a store.
type Matcher struct {
	store *catalog.Store
	sep   string
	log   zerolog.Logger

	// corpus holds the canonical form of every setup code, taken before
	// any link changes. byCode lists the positions of each form in order.
	corpus []string
	byCode map[string][]int

	result Result
}

// New snapshots the setup codes of store and prepares a pass.
func New(store *catalog.Store, opts Options) *Matcher {
	m := &Matcher{
		store:  store,
		sep:    opts.StageSeparator,
		log:    zerolog.Nop(),
		corpus: make([]string, store.Len()),
		byCode: make(map[string][]int, store.Len()),
	}

	if m.sep == "" {
		m.sep = DefaultStageSeparator
	}

	if opts.Logger != nil {
		m.log = *opts.Logger
	}

	for i, code := range store.Codes() {
		// Undecodable codes can still match verbatim.
		if canonical, err := mirror.Canonical(code); err == nil {
			code = canonical
		}

		m.corpus[i] = code
		m.byCode[code] = append(m.byCode[code], i)
	}

	return m
}

// Pair runs a single pass over store. It is New(store, opts).Run().
func Pair(store *catalog.Store, opts Options) Result {
	return New(store, opts).Run()
}

// Run processes every record in order and returns the outcome.
// Only mirror links change.
func (m *Matcher) Run() Result {
	m.result = Result{}
	m.result.Summary.Records = m.store.Len()

	for i := range m.store.Len() {
		if rec := m.store.At(i); !m.excluded(rec) && !rec.Mirror.IsUnset() {
			m.result.Summary.Preset++
		}
	}

	for i := range m.store.Len() {
		rec := m.store.At(i)

		switch {
		case m.excluded(rec):
			m.result.Summary.Excluded++
			m.result.Diagnostics.AddInfo(CodeExcluded, excludedReason(rec), rec.ID, rec.Line)
		case rec.Mirror.IsUnset():
			m.process(i)
		}
	}

	return m.result
}

func (m *Matcher) excluded(rec *catalog.Record) bool {
	return rec.Intermediate || rec.MultiStage(m.sep)
}

func excludedReason(rec *catalog.Record) string {
	if rec.Intermediate {
		return "intermediate setup left for manual pairing"
	}

	return fmt.Sprintf("multi-stage build %q left for manual pairing", rec.Build)
}

// signature is what a record's mirror must look like.
type signature struct {
	code          string
	leftover      string
	selfSymmetric bool
}

// signatureOf mirrors the setup code, leftover and build of record i.
func (m *Matcher) signatureOf(i int) (signature, error) {
	rec := m.store.At(i)

	mirrorCode, err := mirror.Code(rec.SetupCode)
	if err != nil {
		return signature{}, err
	}

	mirrorLeftover := piece.CanonicalMirrorText(rec.Leftover)
	symmetricPieces := rec.Leftover == mirrorLeftover && rec.Build == piece.CanonicalMirrorText(rec.Build)

	return signature{
		code:          mirrorCode,
		leftover:      mirrorLeftover,
		selfSymmetric: symmetricPieces && m.corpus[i] == mirrorCode,
	}, nil
}

func (m *Matcher) codecFailure(diags *diagnostic.Diagnostics, rec *catalog.Record, err error) {
	diags.AddError(CodeCodecFailure, err.Error(), rec.ID, rec.Line)
	m.log.Error().Err(err).Str("id", rec.ID).Int("line", rec.Line).Msg("cannot mirror setup code")
}

func (m *Matcher) process(i int) {
	rec := m.store.At(i)

	sig, err := m.signatureOf(i)
	if err != nil {
		m.result.Summary.CodecFailures++
		m.codecFailure(&m.result.Diagnostics, rec, err)

		return
	}

	switch {
	case sig.selfSymmetric:
		rec.Mirror = catalog.NoMirrorNeeded
		m.result.Summary.SelfSymmetric++
		m.log.Debug().Str("id", rec.ID).Msg("self-symmetric")

		return
	case !m.occursFrom(sig.code, i):
		// An asymmetric board needs its mirror even when the pieces are symmetric.
		rec.Mirror = catalog.NeedsMirror
		m.result.Summary.NeedsMirror++
		m.log.Debug().Str("id", rec.ID).Str("mirror_code", sig.code).Msg("mirror missing from catalog")

		return
	}

	j, rejected := m.scan(i, sig)
	if j < 0 {
		m.result.Summary.Unresolved++
		m.result.Diagnostics.AddWarning(
			CodeUnresolved,
			fmt.Sprintf("mirrored setup found but no candidate fits (leftover %s, %s)", sig.leftover, rec.Success),
			rec.ID, rec.Line, rejected...,
		)
		m.log.Warn().Str("id", rec.ID).Int("line", rec.Line).Strs("rejected", rejected).Msg("unresolved mirror")

		return
	}

	m.store.Pair(i, j)
	m.result.Summary.Pairs++
	m.log.Debug().Str("id", rec.ID).Str("mirror", m.store.At(j).ID).Msg("paired")
}

// occursFrom reports whether code appears in the corpus at position from or later.
func (m *Matcher) occursFrom(code string, from int) bool {
	_, ok := nextPosition(m.byCode[code], from)
	return ok
}

// scan looks for the mirror of record i among the records showing
// mirrorCode, moving forward from i itself. A record whose board is
// symmetric can be accepted as its own mirror. It returns the accepted
// position, or -1 and the reasons every candidate was rejected.
func (m *Matcher) scan(i int, sig signature) (int, []string) {
	rec := m.store.At(i)
	positions := m.byCode[sig.code]

	var rejected []string

	for searchFrom := i; ; {
		idx, ok := nextPosition(positions, searchFrom)
		if !ok {
			return -1, rejected
		}

		searchFrom = idx + 1

		cand := m.store.At(idx)
		if reason := m.reject(rec, cand, sig.leftover); reason != "" {
			rejected = append(rejected, fmt.Sprintf("%s: %s", cand.ID, reason))
			continue
		}

		return idx, rejected
	}
}

// reject returns why cand cannot be the mirror of rec, or "" if it can.
func (m *Matcher) reject(rec, cand *catalog.Record, mirrorLeftover string) string {
	switch {
	case m.excluded(cand):
		return "excluded from pairing"
	case !cand.Mirror.IsUnset():
		return fmt.Sprintf("already linked to %s", cand.Mirror)
	default:
		return m.mismatch(rec, cand, mirrorLeftover)
	}
}

// mismatch returns why cand, a record showing the mirrored board, breaks
// the pairing rules for rec regardless of links, or "" if it does not.
func (m *Matcher) mismatch(rec, cand *catalog.Record, mirrorLeftover string) string {
	switch {
	case m.excluded(cand):
		return "excluded from pairing"
	case cand.CoverLength() != rec.CoverLength():
		return fmt.Sprintf("cover length %d, want %d", cand.CoverLength(), rec.CoverLength())
	case cand.Leftover != mirrorLeftover:
		return fmt.Sprintf("leftover %s, want %s", cand.Leftover, mirrorLeftover)
	case rec.Success.Diff(cand.Success) > Tolerance:
		return fmt.Sprintf("success %s is more than %s from %s", cand.Success, Tolerance, rec.Success)
	default:
		return ""
	}
}

// nextPosition returns the smallest position >= from in the sorted list.
func nextPosition(positions []int, from int) (int, bool) {
	k := sort.SearchInts(positions, from)
	if k == len(positions) {
		return 0, false
	}

	return positions[k], true
}
