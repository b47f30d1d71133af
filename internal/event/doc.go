// Package event provides the observer registries through which the editor
// engine announces state changes.
//
// There are four independent categories, each with its own observer
// interface and hub:
//
//   - CursorObserver / CursorHub: the cursor moved (payload: new location)
//   - TextObserver / TextHub: the text or the selection changed
//   - ClipboardObserver / ClipboardHub: the clipboard stack changed
//   - HistoryObserver / HistoryHub: undo/redo availability changed
//
// Delivery is synchronous: NotifyAll returns after every observer has run.
// Hubs iterate over a copy of the observer list, so an observer may attach
// or detach observers (including itself) while being notified; changes take
// effect from the next notification.
//
// Observers are compared with == for Attach and Detach, so they must have
// comparable dynamic types. Pointer receivers are the usual choice.
//
// Basic usage:
//
//	var hub event.CursorHub
//	hub.Attach(statusLine)
//	hub.NotifyAll(buffer.Loc(3, 7))
//	hub.Detach(statusLine)
//
// Hubs are not safe for concurrent use.
package event
