package goquery

import "github.com/fwojciec/jobnotice"

// sectionSet accumulates sections keyed by title. The first section added
// under a title wins; List returns sections in insertion order.
type sectionSet struct {
	index   map[string]int
	ordered []jobnotice.Section
}

func newSectionSet() *sectionSet {
	return &sectionSet{index: make(map[string]int)}
}

// Has reports whether a section titled title was already added.
func (s *sectionSet) Has(title string) bool {
	_, ok := s.index[title]
	return ok
}

// Add stores sec unless its title is taken, reporting whether it was stored.
func (s *sectionSet) Add(sec jobnotice.Section) bool {
	if s.Has(sec.Title) {
		return false
	}
	s.index[sec.Title] = len(s.ordered)
	s.ordered = append(s.ordered, sec)
	return true
}

// List returns the sections in the order they were added.
func (s *sectionSet) List() []jobnotice.Section {
	if len(s.ordered) == 0 {
		return nil
	}
	out := make([]jobnotice.Section, len(s.ordered))
	copy(out, s.ordered)
	return out
}
