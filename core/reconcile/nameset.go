package reconcile

import (
	"sort"

	"app-reconciler/core/extract"
)

// NameSet is a deduplicated name collection from one source. It keeps two
// parallel representations: the display list with first-seen raw spellings
// in input order, and a normalized lookup set for membership tests.
type NameSet struct {
	display []string
	members map[string]struct{}
}

// NewNameSet builds a name set from raw names. Names collapsing to the same
// normalized form keep the first-seen spelling; names that normalize to the
// empty string are dropped.
func NewNameSet(names []string) *NameSet {
	set := &NameSet{members: make(map[string]struct{}, len(names))}
	for _, name := range names {
		key := extract.Normalize(name)
		if key == "" {
			continue
		}
		if _, seen := set.members[key]; seen {
			continue
		}
		set.members[key] = struct{}{}
		set.display = append(set.display, name)
	}
	return set
}

// Contains reports membership of a normalized key.
func (s *NameSet) Contains(normalized string) bool {
	_, ok := s.members[normalized]
	return ok
}

// Len returns the number of distinct names.
func (s *NameSet) Len() int {
	return len(s.display)
}

// Display returns the display spellings in first-seen order.
func (s *NameSet) Display() []string {
	out := make([]string, len(s.display))
	copy(out, s.display)
	return out
}

// SortedDisplay returns the display spellings sorted by normalized form.
func (s *NameSet) SortedDisplay() []string {
	out := s.Display()
	sortByNormalized(out)
	return out
}

// sortByNormalized orders display spellings by their normalized form, with
// the raw string as tie breaker so equal keys still order deterministically.
func sortByNormalized(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, b := extract.Normalize(names[i]), extract.Normalize(names[j])
		if a == b {
			return names[i] < names[j]
		}
		return a < b
	})
}
