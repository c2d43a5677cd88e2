package collect

import "golang.org/x/text/cases"

// Seen tracks the identity keys accepted so far in a run. Membership is
// case-folded so URL case noise does not defeat deduplication. The set only
// grows; it lives for exactly one run (or longer when pre-seeded for resume).
type Seen struct {
	fold cases.Caser
	keys map[string]struct{}
}

// NewSeen creates an empty identity set.
func NewSeen() *Seen {
	return &Seen{
		fold: cases.Fold(),
		keys: make(map[string]struct{}),
	}
}

// Contains reports whether key was already accepted.
func (s *Seen) Contains(key string) bool {
	_, ok := s.keys[s.fold.String(key)]
	return ok
}

// Add marks key as accepted.
func (s *Seen) Add(key string) {
	s.keys[s.fold.String(key)] = struct{}{}
}

// Seed pre-loads keys from a previous run so they are skipped again.
func (s *Seen) Seed(keys []string) {
	for _, k := range keys {
		s.Add(k)
	}
}

// Len returns the number of distinct keys seen.
func (s *Seen) Len() int {
	return len(s.keys)
}
