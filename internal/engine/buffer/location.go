package buffer

import "fmt"

// Location is a row/column coordinate in a document.
// Both fields are 0-indexed; Column counts runes within the row.
// Location is a value type and does not check itself against any document.
type Location struct {
	Row    int
	Column int
}

// Loc is shorthand for Location{Row: row, Column: column}.
func Loc(row, column int) Location {
	return Location{Row: row, Column: column}
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("(%d:%d)", l.Row, l.Column)
}

// Compare returns -1 if l < other, 0 if l == other, 1 if l > other.
// Rows are compared first, then columns.
func (l Location) Compare(other Location) int {
	switch {
	case l.Row < other.Row:
		return -1
	case l.Row > other.Row:
		return 1
	case l.Column < other.Column:
		return -1
	case l.Column > other.Column:
		return 1
	}
	return 0
}

// Before returns true if l comes before other.
func (l Location) Before(other Location) bool {
	return l.Compare(other) < 0
}

// After returns true if l comes after other.
func (l Location) After(other Location) bool {
	return l.Compare(other) > 0
}

// LocationRange is a pair of locations delimiting a span of text.
// Start may come after End; use Normalize before slicing.
type LocationRange struct {
	Start Location
	End   Location
}

// NewRange creates a range from start to end without reordering.
func NewRange(start, end Location) LocationRange {
	return LocationRange{Start: start, End: end}
}

// CursorRange returns the degenerate range {at, at}.
func CursorRange(at Location) LocationRange {
	return LocationRange{Start: at, End: at}
}

// IsEmpty returns true if the range covers no text.
func (r LocationRange) IsEmpty() bool {
	return r.Start == r.End
}

// Normalize returns the range with Start <= End.
func (r LocationRange) Normalize() LocationRange {
	if r.Start.After(r.End) {
		return LocationRange{Start: r.End, End: r.Start}
	}
	return r
}

// Contains reports whether at lies in the half-open span [start, end).
func (r LocationRange) Contains(at Location) bool {
	n := r.Normalize()
	return !at.Before(n.Start) && at.Before(n.End)
}

// String returns a human-readable representation of the range.
func (r LocationRange) String() string {
	return fmt.Sprintf("[%s-%s]", r.Start, r.End)
}
