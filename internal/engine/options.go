package engine

import (
	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
	"github.com/MatejSimek1/TextEditor/internal/engine/history"
)

// Default configuration values.
const (
	DefaultLineBreak      = buffer.DefaultLineBreak
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// Logger receives debug output from the engine.
// *app.Logger satisfies it.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
// The text is split on the configured line-break marker.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithLineBreak sets the line-break marker.
func WithLineBreak(marker string) Option {
	return func(e *Engine) {
		if marker != "" {
			e.lineBreak = marker
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
