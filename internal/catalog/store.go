package catalog

import "fmt"

// Store is the ordered list of records with an id lookup.
// Records keep their input order; pairing only changes their mirror links.
type Store struct {
	records []*Record
	index   map[string]int
}

// NewStore builds a store. Ids must be unique.
func NewStore(records []*Record) (*Store, error) {
	s := &Store{
		records: records,
		index:   make(map[string]int, len(records)),
	}

	for i, r := range records {
		if r.ID == "" {
			return nil, &RowError{Line: r.Line, Column: ColumnID, Err: ErrMissingID}
		}

		if prev, ok := s.index[r.ID]; ok {
			return nil, &RowError{
				Line:   r.Line,
				Column: ColumnID,
				Err:    fmt.Errorf("%w: %q also on line %d", ErrDuplicateID, r.ID, records[prev].Line),
			}
		}

		s.index[r.ID] = i
	}

	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// At returns the record at position i.
func (s *Store) At(i int) *Record {
	return s.records[i]
}

// Index returns the position of the record with the given id.
func (s *Store) Index(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// ByID returns the record with the given id.
func (s *Store) ByID(id string) (*Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}

	return s.records[i], true
}

// Records returns the records in order. The slice is a copy; the records are shared.
func (s *Store) Records() []*Record {
	out := make([]*Record, len(s.records))
	copy(out, s.records)

	return out
}

// Codes returns a snapshot of every setup code in record order.
func (s *Store) Codes() []string {
	codes := make([]string, len(s.records))
	for i, r := range s.records {
		codes[i] = r.SetupCode
	}

	return codes
}

// Pair links the records at positions i and j to each other.
func (s *Store) Pair(i, j int) {
	a, b := s.records[i], s.records[j]
	a.Mirror = Paired(b.ID)
	b.Mirror = Paired(a.ID)
}
