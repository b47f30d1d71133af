package clipboard

import (
	"github.com/MatejSimek1/TextEditor/internal/event"
)

// Stack is a LIFO of copied texts.
// The zero value is an empty stack ready for use.
type Stack struct {
	items     []string
	observers event.ClipboardHub
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push adds text on top of the stack and notifies observers.
func (s *Stack) Push(text string) {
	s.items = append(s.items, text)
	s.observers.NotifyAll()
}

// Pop removes and returns the top text.
// On an empty stack it returns ("", false) and notifies no one.
func (s *Stack) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	s.observers.NotifyAll()
	return top, true
}

// Peek returns the top text without removing it.
func (s *Stack) Peek() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

// Clear empties the stack. Observers are notified only if it held anything.
func (s *Stack) Clear() {
	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.observers.NotifyAll()
}

// IsNonEmpty returns true if the stack holds at least one text.
func (s *Stack) IsNonEmpty() bool {
	return len(s.items) > 0
}

// Len returns the number of texts on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

// Attach registers o for clipboard changes.
func (s *Stack) Attach(o event.ClipboardObserver) {
	s.observers.Attach(o)
}

// Detach unregisters o.
func (s *Stack) Detach(o event.ClipboardObserver) bool {
	return s.observers.Detach(o)
}
