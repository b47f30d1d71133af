// Package renderer provides the terminal view for the editor.
//
// The renderer is responsible for:
//   - Painting the visible rows, the selection highlight and the cursor
//   - Keeping the cursor inside the viewport
//   - A status line with position, undo/redo availability and clipboard depth
//   - Translating tcell key events into editor actions
//
// It observes the engine, the clipboard and the history through the event
// package interfaces and only repaints when one of them reports a change.
//
// Usage:
//
//	screen, _ := tcell.NewScreen()
//	r, _ := renderer.New(screen, ed, renderer.DefaultOptions())
//	defer r.Close()
//	err := r.Run()
package renderer
