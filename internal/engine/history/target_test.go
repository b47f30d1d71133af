package history

import (
	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
	"github.com/MatejSimek1/TextEditor/internal/engine/cursor"
)

// testTarget is a minimal Target over a real buffer and cursor state.
type testTarget struct {
	buf   *buffer.Buffer
	state *cursor.State

	cursorNotes int
	textNotes   int
}

func newTestTarget(at Location, lines ...string) *testTarget {
	buf := buffer.New()
	buf.SetLines(lines)
	return &testTarget{buf: buf, state: cursor.NewState(at)}
}

func (t *testTarget) Lines() []string          { return t.buf.Lines() }
func (t *testTarget) Cursor() Location         { return t.state.Cursor() }
func (t *testTarget) Selection() LocationRange { return t.state.Selection() }
func (t *testTarget) NotifyCursor()            { t.cursorNotes++ }
func (t *testTarget) NotifyText()              { t.textNotes++ }

func (t *testTarget) Restore(lines []string, at Location, sel LocationRange) {
	t.buf.SetLines(lines)
	t.state.SetCursor(at)
	t.state.SetSelection(sel)
}

func (t *testTarget) SetCursorAndSelection(at Location, sel LocationRange) {
	t.state.SetCursor(at)
	t.state.SetSelection(sel)
}

func (t *testTarget) InsertRaw(text string) (bool, error) {
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

func (t *testTarget) DeleteBeforeRaw() (bool, error) {
	at, changed, err := t.buf.DeleteBefore(t.state.Cursor())
	if err != nil {
		return false, err
	}
	t.state.SetCursor(at)
	t.state.Collapse()
	return changed, nil
}

func (t *testTarget) DeleteAfterRaw() (bool, error) {
	changed, err := t.buf.DeleteAfter(t.state.Cursor())
	if err != nil {
		return false, err
	}
	t.state.Collapse()
	return changed, nil
}

func (t *testTarget) DeleteRangeRaw(r LocationRange) (bool, error) {
	at, err := t.buf.DeleteRange(r)
	if err != nil {
		return false, err
	}
	t.state.SetCursor(at)
	t.state.Collapse()
	return !r.IsEmpty(), nil
}
