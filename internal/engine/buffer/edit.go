package buffer

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// InsertAt splices text into the document at the given location and returns
// where the cursor should land.
//
// If the spliced row contains the line-break marker it is split into several
// rows. Cursor placement:
//
//   - text equal to the marker: column 0 of the last produced row
//   - other text containing the marker: end of the last produced row,
//     which includes whatever followed the insertion point
//   - text without the marker: same row, advanced by the text length
//
// Inserting "" is a no-op.
func (b *Buffer) InsertAt(at Location, text string) (Location, error) {
	if err := b.Validate(at); err != nil {
		return at, fmt.Errorf("insert: %w", err)
	}
	if text == "" {
		return at, nil
	}

	prefix, suffix := splitAt(b.lines[at.Row], at.Column)
	spliced := prefix + text + suffix

	rows := strings.Split(spliced, b.lineBreak)
	if len(rows) == 1 {
		b.lines[at.Row] = spliced
		return Location{Row: at.Row, Column: at.Column + utf8.RuneCountInString(text)}, nil
	}

	b.lines = slices.Replace(b.lines, at.Row, at.Row+1, rows...)

	lastRow := at.Row + len(rows) - 1
	if text == b.lineBreak {
		return Location{Row: lastRow, Column: 0}, nil
	}
	return Location{Row: lastRow, Column: utf8.RuneCountInString(rows[len(rows)-1])}, nil
}

// DeleteBefore removes the rune before at, joining rows when at is at the
// start of a row. It returns the new cursor location and whether anything
// was removed. At the document start it does nothing.
func (b *Buffer) DeleteBefore(at Location) (Location, bool, error) {
	if err := b.Validate(at); err != nil {
		return at, false, fmt.Errorf("delete before: %w", err)
	}

	switch {
	case at.Column > 0:
		line := b.lines[at.Row]
		start := byteIndex(line, at.Column-1)
		end := byteIndex(line, at.Column)
		b.lines[at.Row] = line[:start] + line[end:]
		return Location{Row: at.Row, Column: at.Column - 1}, true, nil

	case at.Row > 0:
		prev := at.Row - 1
		joined := Location{Row: prev, Column: b.LineLen(prev)}
		b.lines[prev] += b.lines[at.Row]
		b.lines = slices.Delete(b.lines, at.Row, at.Row+1)
		return joined, true, nil
	}

	return at, false, nil
}

// DeleteAfter removes the rune at at, joining the next row when at is at the
// end of a row. The cursor does not move. At the document end it does
// nothing.
func (b *Buffer) DeleteAfter(at Location) (bool, error) {
	if err := b.Validate(at); err != nil {
		return false, fmt.Errorf("delete after: %w", err)
	}

	line := b.lines[at.Row]
	switch {
	case at.Column < utf8.RuneCountInString(line):
		start := byteIndex(line, at.Column)
		end := byteIndex(line, at.Column+1)
		b.lines[at.Row] = line[:start] + line[end:]
		return true, nil

	case at.Row < len(b.lines)-1:
		b.lines[at.Row] += b.lines[at.Row+1]
		b.lines = slices.Delete(b.lines, at.Row+1, at.Row+2)
		return true, nil
	}

	return false, nil
}

// DeleteRange removes the text covered by r and returns its normalized start,
// which is where the cursor should land.
//
// When the range spans several rows, rows start.Row through end.Row are
// replaced by a single row made of the start row's prefix and the end row's
// suffix.
func (b *Buffer) DeleteRange(r LocationRange) (Location, error) {
	if err := b.ValidateRange(r); err != nil {
		return r.Start, fmt.Errorf("delete range: %w", err)
	}
	r = r.Normalize()
	start, end := r.Start, r.End

	if start.Row == end.Row {
		line := b.lines[start.Row]
		b.lines[start.Row] = line[:byteIndex(line, start.Column)] + line[byteIndex(line, end.Column):]
		return start, nil
	}

	prefix, _ := splitAt(b.lines[start.Row], start.Column)
	_, suffix := splitAt(b.lines[end.Row], end.Column)
	b.lines = slices.Replace(b.lines, start.Row, end.Row+1, prefix+suffix)
	return start, nil
}

// TextRange returns the text covered by r, rows joined with the line-break
// marker. An empty range yields "".
func (b *Buffer) TextRange(r LocationRange) (string, error) {
	if err := b.ValidateRange(r); err != nil {
		return "", fmt.Errorf("text range: %w", err)
	}
	r = r.Normalize()
	start, end := r.Start, r.End

	if start == end {
		return "", nil
	}
	if start.Row == end.Row {
		line := b.lines[start.Row]
		return line[byteIndex(line, start.Column):byteIndex(line, end.Column)], nil
	}

	parts := make([]string, 0, end.Row-start.Row+1)
	_, head := splitAt(b.lines[start.Row], start.Column)
	parts = append(parts, head)
	parts = append(parts, b.lines[start.Row+1:end.Row]...)
	tail, _ := splitAt(b.lines[end.Row], end.Column)
	parts = append(parts, tail)

	return strings.Join(parts, b.lineBreak), nil
}
