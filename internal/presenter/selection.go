package presenter

import "slices"

// SelectionTracker is the set of selected positions in a displayed list.
// The zero value is an empty selection.
type SelectionTracker struct {
	selected map[int]struct{}
}

// Toggle flips the membership of position and returns the selected count.
// Negative positions are ignored.
func (s *SelectionTracker) Toggle(position int) int {
	if position < 0 {
		return s.Count()
	}
	if s.selected == nil {
		s.selected = make(map[int]struct{})
	}
	if _, ok := s.selected[position]; ok {
		delete(s.selected, position)
	} else {
		s.selected[position] = struct{}{}
	}
	return len(s.selected)
}

// Clear empties the selection.
func (s *SelectionTracker) Clear() {
	clear(s.selected)
}

// Count returns the number of selected positions.
func (s *SelectionTracker) Count() int { return len(s.selected) }

// Contains reports whether position is selected.
func (s *SelectionTracker) Contains(position int) bool {
	_, ok := s.selected[position]
	return ok
}

// Positions returns the selected positions in ascending order.
func (s *SelectionTracker) Positions() []int {
	out := make([]int, 0, len(s.selected))
	for p := range s.selected {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Truncate drops positions at or beyond length.
func (s *SelectionTracker) Truncate(length int) {
	for p := range s.selected {
		if p >= length {
			delete(s.selected, p)
		}
	}
}

// Pick returns the items at the selected positions in list order.
// Positions beyond items are skipped.
func Pick[T any](items []T, s *SelectionTracker) []T {
	out := make([]T, 0, s.Count())
	for _, p := range s.Positions() {
		if p < len(items) {
			out = append(out, items[p])
		}
	}
	return out
}

// ActionMode is a bulk-selection session. It starts on the first long press
// and ends when the selection returns to zero or the user cancels. Ending
// always clears the selection.
type ActionMode struct {
	selection SelectionTracker
	active    bool
}

// Active reports whether a session is running.
func (m *ActionMode) Active() bool { return m.active }

// Selection exposes the tracker of the current session.
func (m *ActionMode) Selection() *SelectionTracker { return &m.selection }

// LongPress starts a session if none is running and toggles position.
// It returns the selected count.
func (m *ActionMode) LongPress(position int) int {
	if !m.active {
		m.selection.Clear()
		m.active = true
	}
	return m.Toggle(position)
}

// Toggle flips position while a session is running and ends the session
// when nothing is left selected. Outside a session it does nothing.
func (m *ActionMode) Toggle(position int) int {
	if !m.active {
		return 0
	}
	n := m.selection.Toggle(position)
	if n == 0 {
		m.End()
	}
	return n
}

// End closes the session and clears the selection.
func (m *ActionMode) End() {
	m.active = false
	m.selection.Clear()
}

// ListReplaced ends the session. Positions of a replaced list are meaningless.
func (m *ActionMode) ListReplaced() {
	m.End()
}
