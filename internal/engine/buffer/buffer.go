package buffer

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOutOfRange = errors.New("location out of range")
)

// Buffer holds a document as an ordered list of lines.
// The list is never empty.
type Buffer struct {
	lines     []string
	lineBreak string
}

// New creates a buffer holding a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:     []string{""},
		lineBreak: DefaultLineBreak,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer by splitting text on the line-break marker.
func NewFromString(text string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = strings.Split(text, b.lineBreak)
	return b
}

// LineBreak returns the line-break marker.
func (b *Buffer) LineBreak() string {
	return b.lineBreak
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a row, or "" if the row does not exist.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineLen returns the length of a row in runes, or 0 if it does not exist.
func (b *Buffer) LineLen(row int) int {
	return utf8.RuneCountInString(b.Line(row))
}

// Lines returns a copy of the line list.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// SetLines replaces the whole line list with a copy of lines.
// An empty list becomes a single empty line.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.lines = []string{""}
		return
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
}

// Text returns the document joined with the line-break marker.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, b.lineBreak)
}

// Len returns the document length in runes, markers included.
func (b *Buffer) Len() int {
	n := utf8.RuneCountInString(b.lineBreak) * (len(b.lines) - 1)
	for _, line := range b.lines {
		n += utf8.RuneCountInString(line)
	}
	return n
}

// LinesRange yields (row, text) for rows in [from, to).
// Bounds are clamped to the document.
func (b *Buffer) LinesRange(from, to int) iter.Seq2[int, string] {
	from = max(from, 0)
	to = min(to, len(b.lines))
	return func(yield func(int, string) bool) {
		for row := from; row < to; row++ {
			if !yield(row, b.lines[row]) {
				return
			}
		}
	}
}

// All yields every (row, text) pair of the document.
func (b *Buffer) All() iter.Seq2[int, string] {
	return b.LinesRange(0, len(b.lines))
}

// Start returns the first location of the document.
func (b *Buffer) Start() Location {
	return Location{}
}

// End returns the last location of the document.
func (b *Buffer) End() Location {
	last := len(b.lines) - 1
	return Location{Row: last, Column: b.LineLen(last)}
}

// Valid reports whether at lies inside the document.
func (b *Buffer) Valid(at Location) bool {
	return at.Row >= 0 && at.Row < len(b.lines) &&
		at.Column >= 0 && at.Column <= b.LineLen(at.Row)
}

// Validate returns ErrOutOfRange if at lies outside the document.
func (b *Buffer) Validate(at Location) error {
	if !b.Valid(at) {
		return fmt.Errorf("%s in %d lines: %w", at, len(b.lines), ErrOutOfRange)
	}
	return nil
}

// ValidateRange validates both ends of r.
func (b *Buffer) ValidateRange(r LocationRange) error {
	if err := b.Validate(r.Start); err != nil {
		return err
	}
	return b.Validate(r.End)
}

// Clamp returns the nearest valid location to at.
func (b *Buffer) Clamp(at Location) Location {
	at.Row = min(max(at.Row, 0), len(b.lines)-1)
	at.Column = min(max(at.Column, 0), b.LineLen(at.Row))
	return at
}

// byteIndex converts a rune column into a byte index within s.
// Columns past the end map to len(s).
func byteIndex(s string, column int) int {
	if column <= 0 {
		return 0
	}
	i := 0
	for n := 0; n < column && i < len(s); n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// splitAt splits s at a rune column.
func splitAt(s string, column int) (string, string) {
	i := byteIndex(s, column)
	return s[:i], s[i:]
}
