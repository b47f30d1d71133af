// Package engine provides the core text editing engine.
//
// The engine package serves as the main facade, combining the line buffer,
// cursor and selection state, reversible edit actions and undo/redo history
// into one API, and notifying observers whenever any of them change.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: line list with raw insert and delete primitives
//   - cursor: cursor movement and selection state
//   - history: snapshot-based edit actions and the undo/redo stacks
//
// Observer registries live in the event package.
//
// # Thread Safety
//
// The engine does no locking. Every operation runs to completion and
// notifies observers synchronously before returning, so a host that shares
// an Engine between goroutines must serialize access itself.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("abc\ndef"))
//
//	e.SetCursor(buffer.Loc(0, 3))
//	e.Insert("\n")    // ["abc", "", "def"], cursor (1:0)
//
//	e.Undo()          // ["abc", "def"], cursor (0:3)
//	e.Redo()          // ["abc", "", "def"], cursor (1:0)
//
// # Selections
//
// Inserting while a selection is active replaces the selected text:
//
//	e.SetSelectionRange(buffer.NewRange(buffer.Loc(0, 0), buffer.Loc(0, 3)))
//	e.Insert("xyz")
//
// DeleteRange removes an explicit range and DeleteSelection removes the
// current selection. Both collapse the selection to the cursor.
//
// # Observers
//
// Cursor observers receive the new cursor location. Text observers are told
// that the text or the selection changed and re-read what they need. History
// observers receive undo and redo availability.
//
//	e.AttachTextObserver(view)
//	e.AttachCursorObserver(view)
//	e.AttachHistoryObserver(statusLine)
//
// # Read-Only Mode
//
//	e := engine.New(engine.WithContent("text"), engine.WithReadOnly())
//	err := e.Insert("x") // err == engine.ErrReadOnly
package engine
