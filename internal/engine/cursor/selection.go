package cursor

// State holds the cursor location and the current selection.
type State struct {
	cursor    Location
	selection LocationRange
}

// NewState creates a state with the cursor at at and nothing selected.
func NewState(at Location) *State {
	return &State{
		cursor:    at,
		selection: LocationRange{Start: at, End: at},
	}
}

// Cursor returns the cursor location.
func (s *State) Cursor() Location {
	return s.cursor
}

// SetCursor moves the cursor without touching the selection.
func (s *State) SetCursor(at Location) {
	s.cursor = at
}

// Selection returns the selection as stored, which may be reversed.
func (s *State) Selection() LocationRange {
	return s.selection
}

// SetSelection replaces the selection.
func (s *State) SetSelection(r LocationRange) {
	s.selection = r
}

// HasSelection returns true if the selection covers any text.
func (s *State) HasSelection() bool {
	return !s.selection.IsEmpty()
}

// Collapse sets the selection to {cursor, cursor}.
func (s *State) Collapse() {
	s.selection = LocationRange{Start: s.cursor, End: s.cursor}
}

// Anchor returns the fixed end of the selection for extending it.
// With nothing selected it is the cursor itself.
func (s *State) Anchor() Location {
	if s.selection.IsEmpty() {
		return s.cursor
	}
	if s.selection.End == s.cursor {
		return s.selection.Start
	}
	if s.selection.Start == s.cursor {
		return s.selection.End
	}
	return s.cursor
}

// Move moves the cursor in direction d and reports whether it moved.
// The selection is left as is.
func (s *State) Move(doc Document, d Direction) bool {
	next, ok := Move(doc, s.cursor, d)
	if ok {
		s.cursor = next
	}
	return ok
}
