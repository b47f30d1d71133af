package engine

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
	"github.com/MatejSimek1/TextEditor/internal/engine/cursor"
	"github.com/MatejSimek1/TextEditor/internal/engine/history"
	"github.com/MatejSimek1/TextEditor/internal/event"
)

// Re-export commonly used types for convenience.
type (
	// Location is a row/column coordinate in the document.
	Location = buffer.Location

	// LocationRange is a span between two locations.
	LocationRange = buffer.LocationRange

	// Direction is a cursor movement direction.
	Direction = cursor.Direction

	// Action is a reversible edit.
	Action = history.Action
)

// Engine is the main facade for the text editing engine.
// It owns one document, its cursor and selection, its undo/redo history and
// the cursor and text observer registries.
type Engine struct {
	// Core components
	buf     *buffer.Buffer
	state   *cursor.State
	history *history.History

	cursorObservers event.CursorHub
	textObservers   event.TextHub

	// Configuration
	lineBreak      string
	maxUndoEntries int
	readOnly       bool
	logger         Logger

	// Initialization
	initContent string
}

// New creates a new Engine with the given options.
// The cursor starts at the beginning of the document.
func New(opts ...Option) *Engine {
	e := &Engine{
		lineBreak:      DefaultLineBreak,
		maxUndoEntries: DefaultMaxUndoEntries,
		logger:         nopLogger{},
	}

	// Apply options to get configuration
	for _, opt := range opts {
		opt(e)
	}

	if e.initContent != "" {
		e.buf = buffer.NewFromString(e.initContent, buffer.WithLineBreak(e.lineBreak))
	} else {
		e.buf = buffer.New(buffer.WithLineBreak(e.lineBreak))
	}
	e.state = cursor.NewState(e.buf.Start())
	e.history = history.New(e.maxUndoEntries)

	return e
}

// NewFromReader creates an Engine from an io.Reader.
// The content replaces any WithContent option.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return New(append(opts, WithContent(string(data)))...), nil
}

// WriteTo writes the document, rows joined with the line-break marker.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.buf.Text())
	return int64(n), err
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the full document joined with the line-break marker.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Lines returns a copy of the document rows.
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// Line returns the text of a row, or "" if it does not exist.
func (e *Engine) Line(row int) string {
	return e.buf.Line(row)
}

// LineLen returns the length of a row in runes.
func (e *Engine) LineLen(row int) int {
	return e.buf.LineLen(row)
}

// LineCount returns the number of rows. It is always at least 1.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// Len returns the document length in runes.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// LineBreak returns the line-break marker.
func (e *Engine) LineBreak() string {
	return e.buf.LineBreak()
}

// LinesRange yields (row, text) for rows in [from, to).
// The document must not be edited while the sequence is being consumed.
func (e *Engine) LinesRange(from, to int) iter.Seq2[int, string] {
	return e.buf.LinesRange(from, to)
}

// AllLines yields every (row, text) pair of the document.
func (e *Engine) AllLines() iter.Seq2[int, string] {
	return e.buf.All()
}

// TextRange returns the text covered by r.
func (e *Engine) TextRange(r LocationRange) (string, error) {
	return e.buf.TextRange(r)
}

// DocumentEnd returns the location after the last rune of the document.
func (e *Engine) DocumentEnd() Location {
	return e.buf.End()
}

// ReadOnly returns true if the engine rejects edits.
func (e *Engine) ReadOnly() bool {
	return e.readOnly
}

// ============================================================================
// Cursor and Selection
// ============================================================================

// Cursor returns the cursor location.
func (e *Engine) Cursor() Location {
	return e.state.Cursor()
}

// SetCursor moves the cursor to at and notifies cursor observers.
// The selection is not changed.
func (e *Engine) SetCursor(at Location) error {
	if err := e.buf.Validate(at); err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	e.state.SetCursor(at)
	e.cursorObservers.NotifyAll(at)
	return nil
}

// MoveCursor moves the cursor one step in direction d and reports whether it
// moved. Cursor observers are notified only when it did.
func (e *Engine) MoveCursor(d Direction) bool {
	if !e.state.Move(e.buf, d) {
		return false
	}
	e.cursorObservers.NotifyAll(e.state.Cursor())
	return true
}

// MoveCursorLeft moves the cursor one rune left, wrapping to the end of the
// previous row.
func (e *Engine) MoveCursorLeft() bool {
	return e.MoveCursor(cursor.Left)
}

// MoveCursorRight moves the cursor one rune right, wrapping to the start of
// the next row.
func (e *Engine) MoveCursorRight() bool {
	return e.MoveCursor(cursor.Right)
}

// MoveCursorUp moves the cursor one row up.
func (e *Engine) MoveCursorUp() bool {
	return e.MoveCursor(cursor.Up)
}

// MoveCursorDown moves the cursor one row down.
func (e *Engine) MoveCursorDown() bool {
	return e.MoveCursor(cursor.Down)
}

// SelectionRange returns the selection as set, which may be reversed.
func (e *Engine) SelectionRange() LocationRange {
	return e.state.Selection()
}

// SetSelectionRange replaces the selection and notifies text observers.
func (e *Engine) SetSelectionRange(r LocationRange) error {
	if err := e.buf.ValidateRange(r); err != nil {
		return fmt.Errorf("set selection: %w", err)
	}
	e.state.SetSelection(r)
	e.textObservers.NotifyAll()
	return nil
}

// HasSelection returns true if the selection covers any text.
func (e *Engine) HasSelection() bool {
	return e.state.HasSelection()
}

// SelectionText returns the selected text, or "" if nothing is selected.
func (e *Engine) SelectionText() string {
	// The selection is validated on every write.
	text, _ := e.buf.TextRange(e.state.Selection())
	return text
}

// SelectionAnchor returns the fixed end of the selection when extending it.
func (e *Engine) SelectionAnchor() Location {
	return e.state.Anchor()
}

// ============================================================================
// Edit Operations
// ============================================================================

// Insert inserts text at the cursor, replacing the selection if any.
// A text containing the line-break marker splits the row.
func (e *Engine) Insert(text string) error {
	return e.apply(func(t history.Target) Action {
		return history.NewInsertAction(t, text)
	})
}

// DeleteBefore deletes the rune before the cursor, joining rows at a row
// start. It does nothing at the document start.
func (e *Engine) DeleteBefore() error {
	return e.apply(func(t history.Target) Action {
		return history.NewDeleteBeforeAction(t)
	})
}

// DeleteAfter deletes the rune after the cursor, joining rows at a row end.
// It does nothing at the document end. Only text observers are notified.
func (e *Engine) DeleteAfter() error {
	return e.apply(func(t history.Target) Action {
		return history.NewDeleteAfterAction(t)
	})
}

// DeleteRange deletes the text covered by r and moves the cursor to its
// start.
func (e *Engine) DeleteRange(r LocationRange) error {
	if err := e.buf.ValidateRange(r); err != nil {
		return fmt.Errorf("delete range: %w", err)
	}
	return e.apply(func(t history.Target) Action {
		return history.NewDeleteRangeAction(t, r)
	})
}

// DeleteSelection deletes the current selection.
func (e *Engine) DeleteSelection() error {
	return e.DeleteRange(e.state.Selection())
}

// apply runs a freshly built action and records it if it changed the
// document.
func (e *Engine) apply(build func(history.Target) Action) error {
	if e.readOnly {
		return ErrReadOnly
	}

	a := build(e.target())
	if err := a.Do(); err != nil {
		return err
	}
	if !history.IsChange(a) {
		return nil
	}

	e.history.Record(a)
	e.logger.Debug("engine: %s (undo depth %d)", a.Description(), e.history.UndoCount())
	return nil
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo reverses the most recent action. With nothing to undo it does nothing.
func (e *Engine) Undo() error {
	if e.readOnly {
		return ErrReadOnly
	}
	info, _ := e.history.PeekUndo()
	if err := e.history.Undo(); err != nil {
		if errors.Is(err, history.ErrNothingToUndo) {
			return nil
		}
		return fmt.Errorf("undo: %w", err)
	}
	e.logger.Debug("engine: undo %s", info.Description)
	return nil
}

// Redo re-applies the most recently undone action. With nothing to redo it
// does nothing.
func (e *Engine) Redo() error {
	if e.readOnly {
		return ErrReadOnly
	}
	info, _ := e.history.PeekRedo()
	if err := e.history.Redo(); err != nil {
		if errors.Is(err, history.ErrNothingToRedo) {
			return nil
		}
		return fmt.Errorf("redo: %w", err)
	}
	e.logger.Debug("engine: redo %s", info.Description)
	return nil
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// Transaction runs fn so that every edit it makes is undone as one step.
// Transactions nest. If fn fails its edits are rolled back, leaving the
// document as it was before fn ran, and the error is returned. Undo and
// Redo inside fn fail with ErrGrouping.
func (e *Engine) Transaction(name string, fn func() error) error {
	return e.history.Transaction(name, fn)
}

// History returns the undo/redo history for inspection and configuration.
func (e *Engine) History() *history.History {
	return e.history
}

// ============================================================================
// Observers
// ============================================================================

// AttachCursorObserver registers o for cursor changes.
func (e *Engine) AttachCursorObserver(o event.CursorObserver) {
	e.cursorObservers.Attach(o)
}

// DetachCursorObserver unregisters o.
func (e *Engine) DetachCursorObserver(o event.CursorObserver) bool {
	return e.cursorObservers.Detach(o)
}

// AttachTextObserver registers o for text and selection changes.
func (e *Engine) AttachTextObserver(o event.TextObserver) {
	e.textObservers.Attach(o)
}

// DetachTextObserver unregisters o.
func (e *Engine) DetachTextObserver(o event.TextObserver) bool {
	return e.textObservers.Detach(o)
}

// AttachHistoryObserver registers o for undo/redo availability changes.
func (e *Engine) AttachHistoryObserver(o event.HistoryObserver) {
	e.history.Observers().Attach(o)
}

// DetachHistoryObserver unregisters o.
func (e *Engine) DetachHistoryObserver(o event.HistoryObserver) bool {
	return e.history.Observers().Detach(o)
}
