package editor

import (
	"fmt"

	"github.com/MatejSimek1/TextEditor/internal/clipboard"
	"github.com/MatejSimek1/TextEditor/internal/engine"
	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
	"github.com/MatejSimek1/TextEditor/internal/engine/cursor"
)

// Editor runs user-level commands against an engine and a clipboard.
type Editor struct {
	engine    *engine.Engine
	clipboard *clipboard.Stack
	registry  *Registry
}

// New creates an editor over e and clip with the built-in actions
// registered. A nil clip gets a fresh stack.
func New(e *engine.Engine, clip *clipboard.Stack) *Editor {
	if clip == nil {
		clip = clipboard.New()
	}
	ed := &Editor{
		engine:    e,
		clipboard: clip,
		registry:  NewRegistry(),
	}
	registerBuiltins(ed.registry)
	return ed
}

// Engine returns the underlying engine.
func (ed *Editor) Engine() *engine.Engine {
	return ed.engine
}

// Clipboard returns the clipboard stack.
func (ed *Editor) Clipboard() *clipboard.Stack {
	return ed.clipboard
}

// Registry returns the action registry so callers can add their own actions.
func (ed *Editor) Registry() *Registry {
	return ed.registry
}

// Execute runs the action registered under name.
func (ed *Editor) Execute(name string) error {
	fn := ed.registry.Get(name)
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	return fn(ed)
}

// Actions returns the names of all registered actions, sorted.
func (ed *Editor) Actions() []string {
	return ed.registry.List()
}

// ============================================================================
// Cursor and Selection
// ============================================================================

// Move moves the cursor one step in direction d and reports whether it moved.
//
// With extend the selection runs from its anchor to the new cursor. The
// anchor is the cursor location when extension began. Without extend any
// selection collapses to the cursor.
func (ed *Editor) Move(d cursor.Direction, extend bool) bool {
	anchor := ed.engine.SelectionAnchor()
	moved := ed.engine.MoveCursor(d)

	want := buffer.CursorRange(ed.engine.Cursor())
	if extend {
		want = buffer.NewRange(anchor, ed.engine.Cursor())
	}
	ed.setSelection(want)
	return moved
}

// CursorToDocumentStart moves the cursor to (0, 0) and collapses the
// selection.
func (ed *Editor) CursorToDocumentStart() error {
	return ed.jump(buffer.Location{})
}

// CursorToDocumentEnd moves the cursor after the last rune and collapses the
// selection.
func (ed *Editor) CursorToDocumentEnd() error {
	return ed.jump(ed.engine.DocumentEnd())
}

func (ed *Editor) jump(at buffer.Location) error {
	if err := ed.engine.SetCursor(at); err != nil {
		return err
	}
	ed.setSelection(buffer.CursorRange(at))
	return nil
}

// SelectAll selects the whole document and puts the cursor at its end.
func (ed *Editor) SelectAll() error {
	end := ed.engine.DocumentEnd()
	if err := ed.engine.SetCursor(end); err != nil {
		return err
	}
	ed.setSelection(buffer.NewRange(buffer.Location{}, end))
	return nil
}

// setSelection updates the selection only if it differs, so text observers
// are not woken for nothing.
func (ed *Editor) setSelection(r buffer.LocationRange) {
	if ed.engine.SelectionRange() == r {
		return
	}
	// r is built from valid locations.
	_ = ed.engine.SetSelectionRange(r)
}

// ============================================================================
// Editing
// ============================================================================

// Insert inserts text at the cursor, replacing the selection if any.
func (ed *Editor) Insert(text string) error {
	return ed.engine.Insert(text)
}

// InsertNewline inserts the document's line-break marker.
func (ed *Editor) InsertNewline() error {
	return ed.engine.Insert(ed.engine.LineBreak())
}

// DeleteBackward deletes the selection if there is one, otherwise the rune
// before the cursor.
func (ed *Editor) DeleteBackward() error {
	if ed.engine.HasSelection() {
		return ed.engine.DeleteSelection()
	}
	return ed.engine.DeleteBefore()
}

// DeleteForward deletes the selection if there is one, otherwise the rune
// after the cursor.
func (ed *Editor) DeleteForward() error {
	if ed.engine.HasSelection() {
		return ed.engine.DeleteSelection()
	}
	return ed.engine.DeleteAfter()
}

// ClearDocument deletes the whole document as one undoable step.
func (ed *Editor) ClearDocument() error {
	if err := ed.SelectAll(); err != nil {
		return err
	}
	return ed.DeleteBackward()
}

// ============================================================================
// Clipboard
// ============================================================================

// Copy pushes the selected text onto the clipboard and reports whether there
// was anything to copy.
func (ed *Editor) Copy() bool {
	if !ed.engine.HasSelection() {
		return false
	}
	ed.clipboard.Push(ed.engine.SelectionText())
	return true
}

// Cut copies the selection and deletes it.
func (ed *Editor) Cut() error {
	if ed.engine.ReadOnly() {
		return engine.ErrReadOnly
	}
	if !ed.Copy() {
		return nil
	}
	return ed.engine.DeleteSelection()
}

// Paste inserts the top of the clipboard. An empty clipboard does nothing.
func (ed *Editor) Paste() error {
	text, ok := ed.clipboard.Peek()
	if !ok {
		return nil
	}
	return ed.engine.Insert(text)
}

// PasteAndPop removes the top of the clipboard and inserts it.
func (ed *Editor) PasteAndPop() error {
	if ed.engine.ReadOnly() {
		return engine.ErrReadOnly
	}
	text, ok := ed.clipboard.Pop()
	if !ok {
		return nil
	}
	return ed.engine.Insert(text)
}
