package discover

// orderedSet keeps paths in insertion order and drops repeats.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

// Add appends path unless it was added before. It reports whether the
// path was new.
func (s *orderedSet) Add(path string) bool {
	if s.seen[path] {
		return false
	}
	s.seen[path] = true
	s.items = append(s.items, path)
	return true
}

// Len returns the number of unique paths.
func (s *orderedSet) Len() int {
	return len(s.items)
}

// All returns the paths in insertion order.
func (s *orderedSet) All() []string {
	return s.items
}
