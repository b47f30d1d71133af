package renderer

// Viewport is the window of document rows and cells shown on screen.
type Viewport struct {
	// Top is the first visible row.
	Top int
	// Left is the first visible cell column.
	Left int
	// Width and Height are the size of the text area in cells.
	Width  int
	Height int

	// Margins keep the cursor away from the edges when scrolling.
	MarginVertical   int
	MarginHorizontal int
}

// Resize sets the visible area.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)
}

// EnsureVisible scrolls so that the cell at (row, x) is inside the viewport,
// honoring the margins where the viewport is large enough. It reports whether
// the viewport moved.
func (v *Viewport) EnsureVisible(row, x int) bool {
	top, left := v.Top, v.Left

	v.Top = scrollAxis(v.Top, v.Height, row, v.MarginVertical)
	v.Left = scrollAxis(v.Left, v.Width, x, v.MarginHorizontal)

	return v.Top != top || v.Left != left
}

// scrollAxis returns the new start of a window of size n over position pos.
func scrollAxis(start, n, pos, margin int) int {
	if n <= 0 {
		return max(pos, 0)
	}
	// Margins only apply when they leave room for the cursor.
	if 2*margin >= n {
		margin = (n - 1) / 2
	}
	if pos < start+margin {
		start = pos - margin
	}
	if pos >= start+n-margin {
		start = pos - n + margin + 1
	}
	return max(start, 0)
}

// RowVisible returns true if row is inside the viewport.
func (v *Viewport) RowVisible(row int) bool {
	return row >= v.Top && row < v.Top+v.Height
}
