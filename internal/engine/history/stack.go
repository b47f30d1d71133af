package history

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MatejSimek1/TextEditor/internal/event"
)

// DefaultMaxEntries is the undo depth used when none is given.
const DefaultMaxEntries = 1000

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// entry wraps an action with metadata.
type entry struct {
	id        uuid.UUID
	action    Action
	timestamp time.Time
}

// History manages the undo and redo stacks of one document.
type History struct {
	undoStack []*entry
	redoStack []*entry

	// Grouping state
	depth     int
	groupName string
	group     []Action

	maxEntries int

	observers event.HistoryHub
}

// New creates a history keeping at most maxEntries undo steps.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Observers returns the hub notified on availability changes.
func (h *History) Observers() *event.HistoryHub {
	return &h.observers
}

// Record pushes an action that has already been applied.
// The redo stack is discarded.
func (h *History) Record(a Action) {
	if h.depth > 0 {
		h.group = append(h.group, a)
		return
	}
	h.push(a)
	h.notify()
}

func (h *History) push(a Action) {
	h.undoStack = append(h.undoStack, &entry{
		id:        uuid.New(),
		action:    a,
		timestamp: time.Now(),
	})
	h.redoStack = nil

	if excess := len(h.undoStack) - h.maxEntries; excess > 0 {
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverses the most recent action and moves it to the redo stack.
// It fails with ErrGrouping while a group is open.
func (h *History) Undo() error {
	if h.depth > 0 {
		return ErrGrouping
	}
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}

	e := h.undoStack[len(h.undoStack)-1]
	if err := e.action.Undo(); err != nil {
		return err
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, e)
	h.notify()
	return nil
}

// Redo re-applies the most recently undone action and moves it back to the
// undo stack.
// It fails with ErrGrouping while a group is open.
func (h *History) Redo() error {
	if h.depth > 0 {
		return ErrGrouping
	}
	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	if err := e.action.Do(); err != nil {
		return err
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, e)
	h.notify()
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.depth = 0
	h.group = nil
	h.notify()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// SetMaxEntries changes the undo depth, dropping the oldest entries if the
// stack is already deeper.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	h.maxEntries = n
	if excess := len(h.undoStack) - n; excess > 0 {
		h.undoStack = h.undoStack[excess:]
	}
}

func (h *History) notify() {
	h.observers.NotifyAll(h.CanUndo(), h.CanRedo())
}
