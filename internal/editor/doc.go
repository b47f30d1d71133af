// Package editor provides the commands an input layer drives: clipboard
// transfer, selection by cursor movement, selection-aware deletion and a
// registry of named actions for key bindings and scripts.
//
// An Editor combines one engine.Engine with one clipboard.Stack. It holds no
// document state of its own.
package editor
