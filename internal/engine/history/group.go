package history

import (
	"errors"
	"fmt"
)

// ErrGrouping is returned by Undo and Redo while a group is open.
var ErrGrouping = errors.New("action group in progress")

// BeginGroup starts an action group.
// Actions recorded while grouping are combined into a single undo unit.
// Groups nest; only the outermost name is kept.
func (h *History) BeginGroup(name string) {
	h.depth++
	if h.depth > 1 {
		return
	}
	h.groupName = name
	h.group = nil
}

// EndGroup closes the innermost group. When the outermost group closes its
// actions are recorded as one CompoundAction. An empty group records
// nothing.
func (h *History) EndGroup() {
	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 {
		return
	}

	actions := h.group
	h.group = nil
	if len(actions) == 0 {
		return
	}

	h.push(NewCompoundAction(h.groupName, actions...))
	h.notify()
}

// CancelGroup closes every open group and undoes the actions recorded in
// it, so the document is left as it was when the outermost group began.
func (h *History) CancelGroup() error {
	err := h.rollback(0)
	h.depth = 0
	h.group = nil
	return err
}

// IsGrouping returns true if currently in an action group.
func (h *History) IsGrouping() bool {
	return h.depth > 0
}

// Transaction runs fn inside an action group.
// If fn returns an error the actions it recorded are undone and the error
// is returned; an enclosing group keeps its own earlier actions.
func (h *History) Transaction(name string, fn func() error) error {
	h.BeginGroup(name)
	mark := len(h.group)
	if err := fn(); err != nil {
		if rerr := h.rollback(mark); rerr != nil {
			err = errors.Join(err, rerr)
		}
		h.EndGroup()
		return err
	}
	h.EndGroup()
	return nil
}

// rollback undoes the grouped actions from index mark onward, newest first,
// and drops them from the group.
func (h *History) rollback(mark int) error {
	var errs []error
	for i := len(h.group) - 1; i >= mark; i-- {
		if err := h.group[i].Undo(); err != nil {
			errs = append(errs, fmt.Errorf("roll back %q: %w", h.group[i].Description(), err))
		}
	}
	if mark < len(h.group) {
		h.group = h.group[:mark]
	}
	return errors.Join(errs...)
}
