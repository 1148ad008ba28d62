package guestlist

import "strings"

// KnownSet accumulates the dedup-relevant fields of every guest seen so
// far in an import run: the persisted guest list at the start, plus each
// row imported during the run. Lookups are linear; guest lists are small
// enough that an index would not pay for itself.
type KnownSet struct {
	keys []DedupKey
}

// NewKnownSet seeds a set from the currently persisted guests.
func NewKnownSet(seed []DedupKey) *KnownSet {
	return &KnownSet{keys: seed}
}

// Contains reports whether g duplicates a known guest: either both have
// a non-empty email and they match case-insensitively, or first and last
// name both match case-insensitively (absent last name compares as "").
func (s *KnownSet) Contains(g Guest) bool {
	first := strings.ToLower(strings.TrimSpace(g.FirstName))
	last := strings.ToLower(strings.TrimSpace(g.LastName))
	email := strings.ToLower(strings.TrimSpace(g.Email))

	for _, known := range s.keys {
		if email != "" && known.Email != "" && email == strings.ToLower(known.Email) {
			return true
		}
		if first == strings.ToLower(strings.TrimSpace(known.FirstName)) &&
			last == strings.ToLower(strings.TrimSpace(known.LastName)) {
			return true
		}
	}
	return false
}

// Add records a newly imported guest so later rows in the same file are
// deduplicated against it.
func (s *KnownSet) Add(g Guest) {
	s.keys = append(s.keys, DedupKey{
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
	})
}
