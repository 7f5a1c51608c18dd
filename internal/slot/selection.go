package slot

// Selection is the user's in-progress set of chosen slot ids. It keeps
// insertion order so snapshots are stable, and it never talks to the
// backend: only an explicit submit transmits it.
type Selection struct {
	order []string
	set   map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[string]struct{})}
}

// ReplaceAll overwrites the selection with ids, preserving their order
// and dropping duplicates. Used once per successful load.
func (s *Selection) ReplaceAll(ids []string) {
	s.order = s.order[:0]
	s.set = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.add(id)
	}
}

// Toggle flips membership of id and reports the new state: true means the
// slot is now selected.
func (s *Selection) Toggle(id string) bool {
	if _, ok := s.set[id]; ok {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

// Has reports whether id is currently selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.set[id]
	return ok
}

// Clear empties the selection. It has no effect on the backend until a
// subsequent submit.
func (s *Selection) Clear() {
	s.order = s.order[:0]
	s.set = make(map[string]struct{})
}

// Snapshot returns the selected ids in insertion order.
func (s *Selection) Snapshot() []string {
	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}

// Len returns the number of selected slots.
func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) add(id string) {
	if _, ok := s.set[id]; ok {
		return
	}
	s.set[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) remove(id string) {
	delete(s.set, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
