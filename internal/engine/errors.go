package engine

import (
	"errors"

	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
	"github.com/MatejSimek1/TextEditor/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrOutOfRange indicates a location outside the document.
	ErrOutOfRange = buffer.ErrOutOfRange

	// ErrReadOnly indicates an operation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrGrouping indicates undo or redo was attempted inside a transaction.
	ErrGrouping = history.ErrGrouping
)
