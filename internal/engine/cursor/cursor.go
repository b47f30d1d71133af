package cursor

import (
	"fmt"

	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
)

// Location is an alias for buffer.Location for convenience.
type Location = buffer.Location

// LocationRange is an alias for buffer.LocationRange for convenience.
type LocationRange = buffer.LocationRange

// Document is the view of a document needed for movement.
type Document interface {
	LineCount() int
	LineLen(row int) int
}

// Direction is a cursor movement direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	}
	return 0, false
}

// Move returns the location reached by moving from at in direction d,
// and whether a move occurred.
func Move(doc Document, at Location, d Direction) (Location, bool) {
	switch d {
	case Left:
		return MoveLeft(doc, at)
	case Right:
		return MoveRight(doc, at)
	case Up:
		return MoveUp(doc, at)
	case Down:
		return MoveDown(doc, at)
	}
	return at, false
}

// MoveLeft steps one column left, or to the end of the previous row.
func MoveLeft(doc Document, at Location) (Location, bool) {
	if at.Column > 0 {
		return Location{Row: at.Row, Column: at.Column - 1}, true
	}
	if at.Row > 0 {
		return Location{Row: at.Row - 1, Column: doc.LineLen(at.Row - 1)}, true
	}
	return at, false
}

// MoveRight steps one column right, or to the start of the next row.
func MoveRight(doc Document, at Location) (Location, bool) {
	if at.Column < doc.LineLen(at.Row) {
		return Location{Row: at.Row, Column: at.Column + 1}, true
	}
	if at.Row < doc.LineCount()-1 {
		return Location{Row: at.Row + 1, Column: 0}, true
	}
	return at, false
}

// MoveUp moves to the previous row, clamping the column to its length.
// On the first row it snaps to column 0.
func MoveUp(doc Document, at Location) (Location, bool) {
	if at.Row > 0 {
		row := at.Row - 1
		return Location{Row: row, Column: min(at.Column, doc.LineLen(row))}, true
	}
	if at.Column > 0 {
		return Location{Row: at.Row, Column: 0}, true
	}
	return at, false
}

// MoveDown moves to the next row, clamping the column to its length.
// On the last row it snaps to the row end.
func MoveDown(doc Document, at Location) (Location, bool) {
	if at.Row < doc.LineCount()-1 {
		row := at.Row + 1
		return Location{Row: row, Column: min(at.Column, doc.LineLen(row))}, true
	}
	if end := doc.LineLen(at.Row); at.Column < end {
		return Location{Row: at.Row, Column: end}, true
	}
	return at, false
}
