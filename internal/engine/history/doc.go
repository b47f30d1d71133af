// Package history provides reversible edit actions and the undo/redo stacks
// that replay them.
//
// # Actions
//
// An Action wraps one raw document mutation. Every built-in action captures
// the full line list, cursor and selection of its Target before it runs, and
// undoes itself by restoring that snapshot verbatim. This makes Undo an exact
// inverse of Do no matter how the forward mutation reshaped the document.
//
// Built-in actions:
//   - InsertAction: insert text at the cursor, replacing any selection
//   - DeleteBeforeAction: delete the rune before the cursor (backspace)
//   - DeleteAfterAction: delete the rune after the cursor (delete key)
//   - DeleteRangeAction: delete a captured range
//   - CompoundAction: several actions as one undo unit
//
// Do may be called more than once. Each call re-captures the line list from
// the live document, restores the cursor and selection captured when the
// action was built, and applies the mutation again.
//
// DeleteAfterAction notifies text observers only, since the cursor does not
// move. The other actions notify both text and cursor observers.
//
// # History
//
// History keeps two stacks. Record pushes an already applied action and
// discards everything that could be redone; Undo and Redo move actions
// between the stacks:
//
//	h := history.New(1000)
//	a := history.NewInsertAction(target, "hello")
//	a.Do()
//	h.Record(a)
//
//	h.Undo() // a.Undo()
//	h.Redo() // a.Do()
//
// Every change of stack contents notifies the HistoryObserver hub with the
// current undo/redo availability.
//
// # Grouping
//
// Actions recorded between BeginGroup and EndGroup are combined into one
// CompoundAction and undone together. Groups nest, and only the outermost
// EndGroup records. Undo and Redo are refused while a group is open. A
// failed Transaction undoes its own actions before returning.
//
// Nothing in this package is safe for concurrent use.
package history
