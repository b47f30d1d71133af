package history

import (
	"time"

	"github.com/google/uuid"
)

// OperationInfo provides read-only info about a recorded action.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	ID          uuid.UUID
	Description string
	Timestamp   time.Time
}

func (e *entry) info() OperationInfo {
	return OperationInfo{
		ID:          e.id,
		Description: e.action.Description(),
		Timestamp:   e.timestamp,
	}
}

// UndoInfo lists the undo stack, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.undoStack))
	for i, e := range h.undoStack {
		result[i] = e.info()
	}
	return result
}

// RedoInfo lists the redo stack, oldest first.
func (h *History) RedoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.redoStack))
	for i, e := range h.redoStack {
		result[i] = e.info()
	}
	return result
}

// PeekUndo returns info about the next undo step without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo step without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}
