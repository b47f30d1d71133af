package renderer

import (
	"github.com/mattn/go-runewidth"
)

// runeCells returns how many cells r occupies when it starts at cell x.
// Tabs advance to the next tab stop and control runes take one cell.
func runeCells(r rune, x, tabWidth int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// CellColumn returns the cell offset of rune column col within line.
func CellColumn(line string, col, tabWidth int) int {
	x := 0
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		x += runeCells(r, x, tabWidth)
		i++
	}
	return x
}

// CellWidth returns the number of cells line occupies.
func CellWidth(line string, tabWidth int) int {
	x := 0
	for _, r := range line {
		x += runeCells(r, x, tabWidth)
	}
	return x
}

// truncate shortens s to at most width cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
