package renderer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
)

// Render paints the whole screen and shows it.
func (r *Renderer) Render() {
	if r.closed.Load() {
		return
	}

	r.screen.Clear()
	cur := r.engine.Cursor()
	cursorX := CellColumn(r.engine.Line(cur.Row), cur.Column, r.opts.TabWidth)
	r.viewport.EnsureVisible(cur.Row, cursorX)

	r.drawText()
	if r.opts.ShowStatusLine {
		r.drawStatusLine()
	}

	if r.viewport.RowVisible(cur.Row) && r.viewport.Width > 0 {
		r.screen.ShowCursor(cursorX-r.viewport.Left, cur.Row-r.viewport.Top)
	} else {
		r.screen.HideCursor()
	}

	r.screen.Show()
	r.dirty = false
}

// drawText paints the visible rows with the selection highlighted.
func (r *Renderer) drawText() {
	vp := r.viewport
	sel := r.engine.SelectionRange().Normalize()
	hasSel := !sel.IsEmpty()
	theme := r.opts.Theme

	for row, line := range r.engine.LinesRange(vp.Top, vp.Top+vp.Height) {
		y := row - vp.Top
		x := 0
		col := 0
		for _, ch := range line {
			style := theme.Text
			if hasSel && sel.Contains(buffer.Loc(row, col)) {
				style = theme.Selection
			}
			w := runeCells(ch, x, r.opts.TabWidth)
			if ch == '\t' {
				for i := range w {
					r.setCell(x+i, y, ' ', style)
				}
			} else {
				r.setCell(x, y, ch, style)
			}
			x += w
			col++
		}

		// A selected line break shows as one highlighted cell past the row end.
		if hasSel && row >= sel.Start.Row && row < sel.End.Row {
			r.setCell(x, y, ' ', theme.Selection)
		}
	}
}

// setCell draws ch at document cell x on screen row y, honoring the
// horizontal scroll.
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	sx := x - r.viewport.Left
	if sx < 0 || sx >= r.viewport.Width {
		return
	}
	r.screen.SetContent(sx, y, ch, nil, style)
}

// StatusText returns the left and right halves of the status line.
func (r *Renderer) StatusText() (left, right string) {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(r.opts.Name)
	if r.modified {
		b.WriteString(" [+]")
	}
	if r.engine.ReadOnly() {
		b.WriteString(" [RO]")
	}
	if r.message != "" {
		b.WriteString("  ")
		b.WriteString(r.message)
	}

	cur := r.engine.Cursor()
	right = fmt.Sprintf("Ln %d, Col %d | undo %s redo %s | clip %d ",
		cur.Row+1, cur.Column+1, onOff(r.undoOK), onOff(r.redoOK), r.ed.Clipboard().Len())
	return b.String(), right
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// drawStatusLine paints the status line on the bottom screen row.
func (r *Renderer) drawStatusLine() {
	width, height := r.screen.Size()
	if height == 0 || width == 0 {
		return
	}
	y := height - 1
	theme := r.opts.Theme

	left, right := r.StatusText()
	rightWidth := runewidth.StringWidth(right)
	leftWidth := max(width-rightWidth, 0)
	left = truncate(left, leftWidth)

	style := theme.StatusLine
	if r.messageErr {
		style = theme.Error.Reverse(true)
	}

	for x := range width {
		r.screen.SetContent(x, y, ' ', nil, theme.StatusLine)
	}
	drawString(r.screen, 0, y, left, style)
	if rightWidth <= width {
		drawString(r.screen, width-rightWidth, y, right, theme.StatusLine)
	}
}

// drawString paints s starting at screen cell x and returns the cell after it.
func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, ch := range str {
		s.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}
