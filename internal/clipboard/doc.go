// Package clipboard provides the editor's clipboard stack.
//
// The stack is an unbounded LIFO of strings, independent of any document.
// Every change is reported to the registered ClipboardObservers.
//
// SystemMirror is an observer that copies the top of the stack to the
// operating system clipboard.
package clipboard
