package renderer

import (
	"github.com/gdamore/tcell/v2"
)

// Theme holds the styles the renderer paints with.
type Theme struct {
	Text       tcell.Style
	Selection  tcell.Style
	StatusLine tcell.Style
	StatusOff  tcell.Style
	Message    tcell.Style
	Error      tcell.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	status := base.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	return Theme{
		Text:       base,
		Selection:  base.Reverse(true),
		StatusLine: status.Bold(true),
		StatusOff:  status.Dim(true),
		Message:    base.Foreground(tcell.ColorGreen),
		Error:      base.Foreground(tcell.ColorRed).Bold(true),
	}
}
