package engine

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
)

type cursorRecorder struct {
	locations []Location
}

func (r *cursorRecorder) UpdateCursorLocation(at Location) {
	r.locations = append(r.locations, at)
}

type textRecorder struct {
	count int
}

func (r *textRecorder) UpdateText() {
	r.count++
}

type historyRecorder struct {
	undo, redo bool
	calls      int
}

func (r *historyRecorder) UpdateUndoRedo(undo, redo bool) {
	r.undo, r.redo = undo, redo
	r.calls++
}

func newTestEngine(t *testing.T, at Location, lines ...string) *Engine {
	t.Helper()
	e := New(WithContent(strings.Join(lines, "\n")))
	if err := e.SetCursor(at); err != nil {
		t.Fatalf("SetCursor(%v) failed: %v", at, err)
	}
	return e
}

func assertDocument(t *testing.T, e *Engine, lines []string, at Location) {
	t.Helper()
	if !slices.Equal(e.Lines(), lines) {
		t.Errorf("lines = %q, want %q", e.Lines(), lines)
	}
	if e.Cursor() != at {
		t.Errorf("cursor = %v, want %v", e.Cursor(), at)
	}
}

func TestNew(t *testing.T) {
	e := New()

	if e.LineCount() != 1 || e.Line(0) != "" {
		t.Errorf("expected single empty line, got %q", e.Lines())
	}
	if e.Cursor() != buffer.Loc(0, 0) {
		t.Errorf("cursor = %v", e.Cursor())
	}
	if e.HasSelection() || e.CanUndo() || e.CanRedo() {
		t.Error("new engine should have no selection and no history")
	}
}

func TestNewWithLineBreak(t *testing.T) {
	e := New(WithContent("a\rb"), WithLineBreak("\r"))

	if e.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", e.LineCount())
	}
	if e.LineBreak() != "\r" {
		t.Errorf("LineBreak() = %q", e.LineBreak())
	}
}

func TestInsertLineBreakAtRowEnd(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 3), "abc", "def")

	if err := e.Insert("\n"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	assertDocument(t, e, []string{"abc", "", "def"}, buffer.Loc(1, 0))
}

func TestDeleteRangeAcrossRows(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(1, 2), "hello", "world")

	if err := e.DeleteRange(buffer.NewRange(buffer.Loc(0, 3), buffer.Loc(1, 2))); err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	assertDocument(t, e, []string{"helrld"}, buffer.Loc(0, 3))
	if e.SelectionRange() != buffer.CursorRange(buffer.Loc(0, 3)) {
		t.Errorf("selection = %v", e.SelectionRange())
	}
}

func TestDeleteBeforeJoinsRows(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(1, 0), "ab", "cd")

	if err := e.DeleteBefore(); err != nil {
		t.Fatalf("DeleteBefore failed: %v", err)
	}
	assertDocument(t, e, []string{"abcd"}, buffer.Loc(0, 2))
}

func TestDeleteAfterJoinsRows(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 2), "ab", "cd")

	if err := e.DeleteAfter(); err != nil {
		t.Fatalf("DeleteAfter failed: %v", err)
	}
	assertDocument(t, e, []string{"abcd"}, buffer.Loc(0, 2))
}

func TestDeleteRangeOutOfRange(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "abc")

	err := e.DeleteRange(buffer.NewRange(buffer.Loc(0, 0), buffer.Loc(0, 9)))
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if e.CanUndo() {
		t.Error("failed delete should not be recorded")
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 5), "hello world")
	sel := buffer.NewRange(buffer.Loc(0, 0), buffer.Loc(0, 5))
	if err := e.SetSelectionRange(sel); err != nil {
		t.Fatal(err)
	}
	if got := e.SelectionText(); got != "hello" {
		t.Errorf("SelectionText() = %q", got)
	}

	if err := e.Insert("bye"); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{"bye world"}, buffer.Loc(0, 3))
	if e.HasSelection() {
		t.Error("selection should collapse after insert")
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{"hello world"}, buffer.Loc(0, 5))
	if e.SelectionRange() != sel {
		t.Errorf("selection after undo = %v, want %v", e.SelectionRange(), sel)
	}

	if err := e.Redo(); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{"bye world"}, buffer.Loc(0, 3))
}

func TestMovementSymmetry(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "ab", "", "cde")

	for row := range e.LineCount() {
		for col := 0; col <= e.LineLen(row); col++ {
			from := buffer.Loc(row, col)

			if err := e.SetCursor(from); err != nil {
				t.Fatal(err)
			}
			if e.MoveCursorLeft() {
				e.MoveCursorRight()
				if e.Cursor() != from {
					t.Errorf("left then right from %v ended at %v", from, e.Cursor())
				}
			}

			if err := e.SetCursor(from); err != nil {
				t.Fatal(err)
			}
			if e.MoveCursorRight() {
				e.MoveCursorLeft()
				if e.Cursor() != from {
					t.Errorf("right then left from %v ended at %v", from, e.Cursor())
				}
			}
		}
	}
}

func TestMoveCursorUpDown(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 5), "hello", "hi")

	if !e.MoveCursorDown() || e.Cursor() != buffer.Loc(1, 2) {
		t.Errorf("down clamps column: %v", e.Cursor())
	}
	if e.MoveCursorDown() {
		t.Error("expected no movement at document end")
	}
	if !e.MoveCursorUp() || e.Cursor() != buffer.Loc(0, 2) {
		t.Errorf("up: %v", e.Cursor())
	}
	if !e.MoveCursorUp() || e.Cursor() != buffer.Loc(0, 0) {
		t.Errorf("up on first row snaps to start: %v", e.Cursor())
	}
	if e.MoveCursorUp() {
		t.Error("expected no movement at document start")
	}
}

func TestUndoRestoresExactly(t *testing.T) {
	edits := []struct {
		name string
		run  func(*Engine) error
	}{
		{"insert", func(e *Engine) error { return e.Insert("one\ntwo") }},
		{"insert break", func(e *Engine) error { return e.Insert("\n") }},
		{"delete before", func(e *Engine) error { return e.DeleteBefore() }},
		{"delete after", func(e *Engine) error { return e.DeleteAfter() }},
		{"delete range", func(e *Engine) error {
			return e.DeleteRange(buffer.NewRange(buffer.Loc(0, 1), buffer.Loc(2, 2)))
		}},
	}

	for _, tt := range edits {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, buffer.Loc(1, 1), "first", "second", "third")
			before := e.Lines()
			cursorBefore := e.Cursor()

			if err := tt.run(e); err != nil {
				t.Fatal(err)
			}
			after := e.Lines()
			cursorAfter := e.Cursor()

			if err := e.Undo(); err != nil {
				t.Fatal(err)
			}
			assertDocument(t, e, before, cursorBefore)

			if err := e.Redo(); err != nil {
				t.Fatal(err)
			}
			assertDocument(t, e, after, cursorAfter)
		})
	}
}

func TestRedoReplaysForward(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "")

	for _, s := range []string{"a", "b", "\n", "c"} {
		if err := e.Insert(s); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.DeleteBefore(); err != nil {
		t.Fatal(err)
	}
	final := e.Lines()
	finalCursor := e.Cursor()

	for e.CanUndo() {
		if err := e.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	assertDocument(t, e, []string{""}, buffer.Loc(0, 0))

	for e.CanRedo() {
		if err := e.Redo(); err != nil {
			t.Fatal(err)
		}
	}
	assertDocument(t, e, final, finalCursor)
}

func TestRedoInvalidatedByNewEdit(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "")

	if err := e.Insert("a"); err != nil {
		t.Fatal(err)
	}
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if err := e.Insert("b"); err != nil {
		t.Fatal(err)
	}

	if e.CanRedo() {
		t.Error("redo should be unavailable after a new edit")
	}
	if err := e.Redo(); err != nil {
		t.Errorf("Redo on empty stack should be a no-op, got %v", err)
	}
	assertDocument(t, e, []string{"b"}, buffer.Loc(0, 1))
}

func TestUndoEmptyIsNoop(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 1), "abc")

	if err := e.Undo(); err != nil {
		t.Errorf("Undo() = %v, want nil", err)
	}
	assertDocument(t, e, []string{"abc"}, buffer.Loc(0, 1))
}

func TestNoopEditNotRecorded(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "abc")

	if err := e.DeleteBefore(); err != nil {
		t.Fatal(err)
	}
	if err := e.Insert(""); err != nil {
		t.Fatal(err)
	}
	if e.CanUndo() {
		t.Error("no-op edits should not be recorded")
	}
}

func TestObserverNotifications(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 1), "abc")
	cursors := &cursorRecorder{}
	texts := &textRecorder{}
	hist := &historyRecorder{}
	e.AttachCursorObserver(cursors)
	e.AttachTextObserver(texts)
	e.AttachHistoryObserver(hist)

	if err := e.Insert("x"); err != nil {
		t.Fatal(err)
	}
	if len(cursors.locations) != 1 || cursors.locations[0] != buffer.Loc(0, 2) {
		t.Errorf("cursor notifications after insert: %v", cursors.locations)
	}
	if texts.count != 1 {
		t.Errorf("text notifications after insert: %d", texts.count)
	}
	if !hist.undo || hist.redo {
		t.Errorf("history after insert: undo=%v redo=%v", hist.undo, hist.redo)
	}

	if err := e.DeleteAfter(); err != nil {
		t.Fatal(err)
	}
	if len(cursors.locations) != 1 {
		t.Errorf("DeleteAfter notified cursor observers: %v", cursors.locations)
	}
	if texts.count != 2 {
		t.Errorf("text notifications after delete after: %d", texts.count)
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if !hist.undo || !hist.redo {
		t.Errorf("history after undo: undo=%v redo=%v", hist.undo, hist.redo)
	}

	e.MoveCursorLeft()
	if got := cursors.locations[len(cursors.locations)-1]; got != buffer.Loc(0, 1) {
		t.Errorf("last cursor notification = %v", got)
	}

	if !e.DetachTextObserver(texts) {
		t.Error("expected text observer to be attached")
	}
	count := texts.count
	if err := e.SetSelectionRange(buffer.NewRange(buffer.Loc(0, 0), buffer.Loc(0, 2))); err != nil {
		t.Fatal(err)
	}
	if texts.count != count {
		t.Error("detached observer was notified")
	}
	if e.DetachCursorObserver(&cursorRecorder{}) {
		t.Error("detaching an unknown observer should report false")
	}
	if !e.DetachHistoryObserver(hist) {
		t.Error("expected history observer to be attached")
	}
}

func TestMoveAtBoundaryDoesNotNotify(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "abc")
	cursors := &cursorRecorder{}
	e.AttachCursorObserver(cursors)

	if e.MoveCursorLeft() {
		t.Error("expected no movement")
	}
	if len(cursors.locations) != 0 {
		t.Errorf("unexpected notifications: %v", cursors.locations)
	}
}

func TestSetSelectionRangeInvalid(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "abc")

	err := e.SetSelectionRange(buffer.NewRange(buffer.Loc(0, 0), buffer.Loc(1, 0)))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := e.SetCursor(buffer.Loc(0, 4)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestReadOnly(t *testing.T) {
	e := New(WithContent("text"), WithReadOnly())

	if !e.ReadOnly() {
		t.Fatal("expected read-only engine")
	}
	for name, op := range map[string]func() error{
		"insert":        func() error { return e.Insert("x") },
		"delete before": e.DeleteBefore,
		"delete after":  e.DeleteAfter,
		"undo":          e.Undo,
		"redo":          e.Redo,
	} {
		if err := op(); !errors.Is(err, ErrReadOnly) {
			t.Errorf("%s: expected ErrReadOnly, got %v", name, err)
		}
	}
	if e.Text() != "text" {
		t.Errorf("read-only document changed: %q", e.Text())
	}
	if !e.MoveCursorRight() {
		t.Error("cursor movement should work on a read-only engine")
	}
}

func TestTransaction(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "")

	err := e.Transaction("wrap", func() error {
		if err := e.Insert("("); err != nil {
			return err
		}
		return e.Insert(")")
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.History().UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", e.History().UndoCount())
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{""}, buffer.Loc(0, 0))
}

func TestTransactionFailureRollsBack(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "")
	if err := e.Insert("x"); err != nil {
		t.Fatal(err)
	}

	sentinel := errors.New("abort")
	err := e.Transaction("aborted", func() error {
		if err := e.Insert("y"); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Transaction() = %v, want sentinel", err)
	}
	assertDocument(t, e, []string{"x"}, buffer.Loc(0, 1))

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{""}, buffer.Loc(0, 0))
	if err := e.Redo(); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{"x"}, buffer.Loc(0, 1))
}

func TestNestedTransaction(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "")

	err := e.Transaction("outer", func() error {
		if err := e.Insert("a"); err != nil {
			return err
		}
		if err := e.Transaction("inner", func() error { return e.Insert("b") }); err != nil {
			return err
		}
		return e.Insert("c")
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := e.History().UndoCount(); got != 1 {
		t.Errorf("UndoCount() = %d, want 1", got)
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{""}, buffer.Loc(0, 0))
}

func TestUndoInsideTransaction(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "")
	if err := e.Insert("x"); err != nil {
		t.Fatal(err)
	}

	var undoErr error
	err := e.Transaction("undo inside", func() error {
		if err := e.Insert("y"); err != nil {
			return err
		}
		undoErr = e.Undo()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(undoErr, ErrGrouping) {
		t.Errorf("Undo() inside transaction = %v, want ErrGrouping", undoErr)
	}
	assertDocument(t, e, []string{"xy"}, buffer.Loc(0, 2))

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	assertDocument(t, e, []string{"x"}, buffer.Loc(0, 1))
}

func TestMaxUndoEntries(t *testing.T) {
	e := New(WithMaxUndoEntries(2))

	for _, s := range []string{"a", "b", "c"} {
		if err := e.Insert(s); err != nil {
			t.Fatal(err)
		}
	}
	if got := e.History().UndoCount(); got != 2 {
		t.Errorf("UndoCount() = %d, want 2", got)
	}
}

func TestNewFromReaderWriteTo(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("one\ntwo\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(e.Lines(), []string{"one", "two", ""}) {
		t.Errorf("lines = %q", e.Lines())
	}

	var sb strings.Builder
	n, err := e.WriteTo(&sb)
	if err != nil {
		t.Fatal(err)
	}
	if sb.String() != "one\ntwo\n" || n != 8 {
		t.Errorf("WriteTo wrote %q (%d bytes)", sb.String(), n)
	}
}

func TestLinesRange(t *testing.T) {
	e := newTestEngine(t, buffer.Loc(0, 0), "a", "b", "c")

	var got []string
	for _, line := range e.LinesRange(1, 3) {
		got = append(got, line)
	}
	if !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("LinesRange(1, 3) = %q", got)
	}

	rows := 0
	for range e.AllLines() {
		rows++
	}
	if rows != 3 {
		t.Errorf("AllLines yielded %d rows", rows)
	}
}

type debugRecorder struct {
	messages []string
}

func (d *debugRecorder) Debug(format string, args ...any) {
	d.messages = append(d.messages, format)
}

func TestLoggerReceivesHistoryEvents(t *testing.T) {
	log := &debugRecorder{}
	e := New(WithLogger(log))

	if err := e.Insert("x"); err != nil {
		t.Fatal(err)
	}
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if err := e.Redo(); err != nil {
		t.Fatal(err)
	}
	if len(log.messages) != 3 {
		t.Errorf("expected 3 debug messages, got %q", log.messages)
	}
}
