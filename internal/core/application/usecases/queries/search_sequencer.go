package queries

import "sync"

// SearchSequencer serializes overlapping searches so only the most recently
// issued one may deliver its result. Zone searches are issued per keystroke
// from the admin panel; without sequencing, a slow response for "dha" could
// overwrite the result for "dhaka" that already arrived.
//
// Usage:
//
//	seq := sequencer.Begin()
//	result := doSearch()
//	if !sequencer.StillCurrent(seq) {
//	    return ErrSearchSuperseded
//	}
type SearchSequencer struct {
	mu     sync.Mutex
	latest uint64
}

// NewSearchSequencer creates a sequencer with no searches issued.
func NewSearchSequencer() *SearchSequencer {
	return &SearchSequencer{}
}

// Begin registers a new search and returns its sequence number. Any search
// begun earlier is superseded from this point on.
func (s *SearchSequencer) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// StillCurrent reports whether the given search is still the most recently
// issued one and may therefore deliver its result.
func (s *SearchSequencer) StillCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest == seq
}
