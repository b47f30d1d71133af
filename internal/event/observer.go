package event

import "github.com/MatejSimek1/TextEditor/internal/engine/buffer"

// CursorObserver is notified when the cursor moves.
type CursorObserver interface {
	UpdateCursorLocation(at buffer.Location)
}

// TextObserver is notified when the text or the selection changes.
// Observers re-read whatever state they need.
type TextObserver interface {
	UpdateText()
}

// ClipboardObserver is notified when the clipboard stack changes.
type ClipboardObserver interface {
	UpdateClipboard()
}

// HistoryObserver is notified when undo or redo availability may have changed.
type HistoryObserver interface {
	UpdateUndoRedo(undoAvailable, redoAvailable bool)
}

// CursorHub delivers cursor changes.
type CursorHub struct {
	Hub[CursorObserver]
}

// NotifyAll calls every cursor observer with the new location.
func (h *CursorHub) NotifyAll(at buffer.Location) {
	h.Each(func(o CursorObserver) { o.UpdateCursorLocation(at) })
}

// TextHub delivers text and selection changes.
type TextHub struct {
	Hub[TextObserver]
}

// NotifyAll calls every text observer.
func (h *TextHub) NotifyAll() {
	h.Each(func(o TextObserver) { o.UpdateText() })
}

// ClipboardHub delivers clipboard changes.
type ClipboardHub struct {
	Hub[ClipboardObserver]
}

// NotifyAll calls every clipboard observer.
func (h *ClipboardHub) NotifyAll() {
	h.Each(func(o ClipboardObserver) { o.UpdateClipboard() })
}

// HistoryHub delivers undo/redo availability.
type HistoryHub struct {
	Hub[HistoryObserver]
}

// NotifyAll calls every history observer with the availability flags.
func (h *HistoryHub) NotifyAll(undoAvailable, redoAvailable bool) {
	h.Each(func(o HistoryObserver) { o.UpdateUndoRedo(undoAvailable, redoAvailable) })
}
