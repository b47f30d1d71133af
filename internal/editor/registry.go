package editor

import (
	"sort"
)

// ActionFunc runs a named action against an editor.
type ActionFunc func(ed *Editor) error

// Registry maps action names to their implementations.
type Registry struct {
	actions map[string]ActionFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]ActionFunc)}
}

// Register adds or replaces the action registered under name.
func (r *Registry) Register(name string, fn ActionFunc) {
	r.actions[name] = fn
}

// Unregister removes the action registered under name.
func (r *Registry) Unregister(name string) {
	delete(r.actions, name)
}

// Get returns the action registered under name, or nil.
func (r *Registry) Get(name string) ActionFunc {
	return r.actions[name]
}

// Has returns true if an action is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.actions[name]
	return ok
}

// List returns all registered action names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	return len(r.actions)
}
