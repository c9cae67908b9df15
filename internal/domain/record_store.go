package domain

// RecordStore is the ordered collection of saved state records. Order is
// the order records were loaded in, which is the stacking order they were
// saved in (top to bottom).
//
// The store owns its records; callers must not keep a record past the
// lookup that returned it. It is not safe for concurrent use.
type RecordStore struct {
	records []*StateRecord
}

// NewRecordStore creates an empty store
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Append adds a record at the end of the store
func (s *RecordStore) Append(r *StateRecord) {
	s.records = append(s.records, r)
}

// Len returns the number of records
func (s *RecordStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns the records in load order. The returned slice is a copy;
// the records themselves are shared.
func (s *RecordStore) Records() []*StateRecord {
	if s == nil {
		return nil
	}
	out := make([]*StateRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Each calls fn for every record in load order until fn returns false
func (s *RecordStore) Each(fn func(i int, r *StateRecord) bool) {
	if s == nil {
		return
	}
	for i, r := range s.records {
		if !fn(i, r) {
			return
		}
	}
}

// RemoveIndices drops the records at the given positions in a single pass,
// preserving the relative order of the survivors.
func (s *RecordStore) RemoveIndices(drop map[int]bool) int {
	if len(drop) == 0 {
		return 0
	}
	kept := s.records[:0]
	removed := 0
	for i, r := range s.records {
		if drop[i] {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	// Clear the tail so dropped records can be collected
	for i := len(kept); i < len(s.records); i++ {
		s.records[i] = nil
	}
	s.records = kept
	return removed
}

// Clear releases every record
func (s *RecordStore) Clear() {
	if s == nil {
		return
	}
	s.records = nil
}

// Unmatched returns how many records have not been claimed yet
func (s *RecordStore) Unmatched() int {
	n := 0
	s.Each(func(_ int, r *StateRecord) bool {
		if !r.Matched {
			n++
		}
		return true
	})
	return n
}
