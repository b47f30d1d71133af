package event

import "slices"

// Hub is an ordered registry of observers of type O.
// The zero value is an empty hub ready for use.
type Hub[O comparable] struct {
	observers []O
}

// Attach registers an observer. Attaching an observer twice has no effect.
func (h *Hub[O]) Attach(o O) {
	if slices.Contains(h.observers, o) {
		return
	}
	h.observers = append(h.observers, o)
}

// Detach unregisters an observer and reports whether it was registered.
func (h *Hub[O]) Detach(o O) bool {
	i := slices.Index(h.observers, o)
	if i < 0 {
		return false
	}
	h.observers = slices.Delete(h.observers, i, i+1)
	return true
}

// Len returns the number of registered observers.
func (h *Hub[O]) Len() int {
	return len(h.observers)
}

// Each calls fn for every observer registered at the time of the call.
func (h *Hub[O]) Each(fn func(O)) {
	for _, o := range slices.Clone(h.observers) {
		fn(o)
	}
}
