package utils

// IDSet is a deduplicated collection of product identifiers gathered
// from multiple discovery sources. First-seen order is preserved so a
// run processes products deterministically.
type IDSet struct {
	seen map[string]struct{}
	ids  []string
}

// NewIDSet creates an empty IDSet.
func NewIDSet() *IDSet {
	return &IDSet{seen: make(map[string]struct{})}
}

// Add returns true if the identifier was newly added, false if it was
// already present or empty.
func (s *IDSet) Add(id string) bool {
	if id == "" {
		return false
	}
	if _, exists := s.seen[id]; exists {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// AddAll adds every identifier in ids, returning the number newly added.
func (s *IDSet) AddAll(ids []string) int {
	added := 0
	for _, id := range ids {
		if s.Add(id) {
			added++
		}
	}
	return added
}

// Contains returns true if the identifier has already been collected.
func (s *IDSet) Contains(id string) bool {
	_, exists := s.seen[id]
	return exists
}

// Size returns the number of unique identifiers collected.
func (s *IDSet) Size() int {
	return len(s.ids)
}

// Values returns the identifiers in first-seen order.
func (s *IDSet) Values() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
