package engine

import (
	"github.com/MatejSimek1/TextEditor/internal/engine/history"
)

// target is the view of an Engine that edit actions work through.
// It carries the raw primitives, which neither record history nor check
// read-only mode.
type target Engine

var _ history.Target = (*target)(nil)

func (e *Engine) target() *target {
	return (*target)(e)
}

func (t *target) Lines() []string {
	return t.buf.Lines()
}

func (t *target) Cursor() Location {
	return t.state.Cursor()
}

func (t *target) Selection() LocationRange {
	return t.state.Selection()
}

func (t *target) Restore(lines []string, at Location, sel LocationRange) {
	t.buf.SetLines(lines)
	t.state.SetCursor(at)
	t.state.SetSelection(sel)
}

func (t *target) SetCursorAndSelection(at Location, sel LocationRange) {
	t.state.SetCursor(at)
	t.state.SetSelection(sel)
}

// InsertRaw deletes the selection, if any, then splices text at the cursor.
func (t *target) InsertRaw(text string) (bool, error) {
	if text == "" {
		return false, nil
	}
	if t.state.HasSelection() {
		if _, err := t.DeleteRangeRaw(t.state.Selection()); err != nil {
			return false, err
		}
	}

	at, err := t.buf.InsertAt(t.state.Cursor(), text)
	if err != nil {
		return false, err
	}
	t.state.SetCursor(at)
	t.state.Collapse()
	return true, nil
}

func (t *target) DeleteBeforeRaw() (bool, error) {
	at, changed, err := t.buf.DeleteBefore(t.state.Cursor())
	if err != nil {
		return false, err
	}
	t.state.SetCursor(at)
	t.state.Collapse()
	return changed, nil
}

func (t *target) DeleteAfterRaw() (bool, error) {
	changed, err := t.buf.DeleteAfter(t.state.Cursor())
	if err != nil {
		return false, err
	}
	t.state.Collapse()
	return changed, nil
}

// DeleteRangeRaw removes r and leaves the cursor and a collapsed selection at
// its start.
func (t *target) DeleteRangeRaw(r LocationRange) (bool, error) {
	at, err := t.buf.DeleteRange(r)
	if err != nil {
		return false, err
	}
	t.state.SetCursor(at)
	t.state.Collapse()
	return !r.IsEmpty(), nil
}

func (t *target) NotifyCursor() {
	t.cursorObservers.NotifyAll(t.state.Cursor())
}

func (t *target) NotifyText() {
	t.textObservers.NotifyAll()
}
