package sat

// VarSet represents a set of variable IDs in [0, N) that can be cleared in
// O(1) using a generation counter, instead of re-zeroing a boolean slice.
// Used by conflict analysis to track which variables have already been
// visited ("seen") during the current 1-UIP walk.
type VarSet struct {
	addedAt   []uint32
	timestamp uint32
}

// Contains reports whether v is currently in the set.
func (s *VarSet) Contains(v int) bool {
	return s.addedAt[v] == s.timestamp
}

// Add adds v to the set.
func (s *VarSet) Add(v int) {
	s.addedAt[v] = s.timestamp
}

// Clear empties the set in constant time.
func (s *VarSet) Clear() {
	s.timestamp++
	if s.timestamp == 0 { // wrapped around
		s.timestamp = 1
		for i := range s.addedAt {
			s.addedAt[i] = 0
		}
	}
}

// Grow extends the set's capacity by one variable.
func (s *VarSet) Grow() {
	s.addedAt = append(s.addedAt, 0)
}

// Clone returns an independent copy of the set, used by minimization's
// speculative redundancy check (§4.5 step 5) so it can mark literals
// without disturbing the set owned by the main analysis loop.
func (s *VarSet) Clone() *VarSet {
	cp := &VarSet{
		addedAt:   append([]uint32(nil), s.addedAt...),
		timestamp: s.timestamp,
	}
	return cp
}
