package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
)

// Location is an alias for buffer.Location for convenience.
type Location = buffer.Location

// LocationRange is an alias for buffer.LocationRange for convenience.
type LocationRange = buffer.LocationRange

// Target is the document state an action edits.
// The engine implements it; actions hold it as their only handle to the
// document.
type Target interface {
	// Lines returns a copy of the line list.
	Lines() []string
	Cursor() Location
	Selection() LocationRange

	// Restore replaces the line list, cursor and selection verbatim.
	Restore(lines []string, cursor Location, selection LocationRange)

	// SetCursorAndSelection positions the cursor and selection before a
	// raw primitive runs.
	SetCursorAndSelection(cursor Location, selection LocationRange)

	// Raw primitives. Each reports whether the document changed.
	InsertRaw(text string) (bool, error)
	DeleteBeforeRaw() (bool, error)
	DeleteAfterRaw() (bool, error)
	DeleteRangeRaw(r LocationRange) (bool, error)

	NotifyCursor()
	NotifyText()
}

// Action is a reversible edit.
type Action interface {
	// Do applies the edit. It may be called again after Undo to redo it.
	Do() error

	// Undo reverses the most recent Do.
	Undo() error

	// Description returns a human-readable description.
	Description() string
}

// snapshot is the document state captured before an action runs.
type snapshot struct {
	lines     []string
	cursor    Location
	selection LocationRange
}

// edit holds the state shared by all snapshot-based actions.
type edit struct {
	target  Target
	before  snapshot
	changed bool

	// notifyCursor is false for actions that never move the cursor.
	notifyCursor bool
}

func newEdit(t Target, notifyCursor bool) edit {
	return edit{
		target: t,
		before: snapshot{
			lines:     t.Lines(),
			cursor:    t.Cursor(),
			selection: t.Selection(),
		},
		notifyCursor: notifyCursor,
	}
}

// prepare re-captures the line list from the live document and puts the
// cursor and selection back where they were when the action was built.
func (e *edit) prepare() {
	e.before.lines = e.target.Lines()
	e.target.SetCursorAndSelection(e.before.cursor, e.before.selection)
}

// finish records the outcome of the primitive and notifies observers.
func (e *edit) finish(changed bool, err error) error {
	if err != nil {
		e.target.Restore(e.before.lines, e.before.cursor, e.before.selection)
		return err
	}
	e.changed = changed
	e.notify()
	return nil
}

// Undo restores the captured snapshot.
func (e *edit) Undo() error {
	e.target.Restore(e.before.lines, e.before.cursor, e.before.selection)
	e.notify()
	return nil
}

// Changed reports whether the last Do modified the document.
func (e *edit) Changed() bool {
	return e.changed
}

func (e *edit) notify() {
	e.target.NotifyText()
	if e.notifyCursor {
		e.target.NotifyCursor()
	}
}

// InsertAction inserts text at the cursor, replacing the selection if any.
type InsertAction struct {
	edit
	Text string
}

// NewInsertAction creates an insert action against the current state of t.
func NewInsertAction(t Target, text string) *InsertAction {
	return &InsertAction{edit: newEdit(t, true), Text: text}
}

// Do inserts the text.
func (a *InsertAction) Do() error {
	a.prepare()
	changed, err := a.target.InsertRaw(a.Text)
	if err != nil {
		err = fmt.Errorf("insert %q: %w", a.Text, err)
	}
	return a.finish(changed, err)
}

// Description returns a human-readable description.
func (a *InsertAction) Description() string {
	n := utf8.RuneCountInString(a.Text)
	switch {
	case a.Text == "\n" || a.Text == "\r" || a.Text == "\r\n":
		return "Insert newline"
	case n == 1:
		return fmt.Sprintf("Type '%s'", a.Text)
	case n <= 20:
		return fmt.Sprintf("Insert %q", a.Text)
	}
	return fmt.Sprintf("Insert %d characters", n)
}

// DeleteBeforeAction deletes the rune before the cursor.
type DeleteBeforeAction struct {
	edit
}

// NewDeleteBeforeAction creates a backspace action against the current state of t.
func NewDeleteBeforeAction(t Target) *DeleteBeforeAction {
	return &DeleteBeforeAction{edit: newEdit(t, true)}
}

// Do deletes the rune before the cursor.
func (a *DeleteBeforeAction) Do() error {
	a.prepare()
	changed, err := a.target.DeleteBeforeRaw()
	if err != nil {
		err = fmt.Errorf("delete before: %w", err)
	}
	return a.finish(changed, err)
}

// Description returns a human-readable description.
func (a *DeleteBeforeAction) Description() string {
	return "Backspace"
}

// DeleteAfterAction deletes the rune after the cursor.
// It notifies text observers only.
type DeleteAfterAction struct {
	edit
}

// NewDeleteAfterAction creates a forward delete action against the current state of t.
func NewDeleteAfterAction(t Target) *DeleteAfterAction {
	return &DeleteAfterAction{edit: newEdit(t, false)}
}

// Do deletes the rune after the cursor.
func (a *DeleteAfterAction) Do() error {
	a.prepare()
	changed, err := a.target.DeleteAfterRaw()
	if err != nil {
		err = fmt.Errorf("delete after: %w", err)
	}
	return a.finish(changed, err)
}

// Description returns a human-readable description.
func (a *DeleteAfterAction) Description() string {
	return "Delete"
}

// DeleteRangeAction deletes a range captured at construction.
type DeleteRangeAction struct {
	edit
	Range LocationRange
}

// NewDeleteRangeAction creates an action deleting r from t.
func NewDeleteRangeAction(t Target, r LocationRange) *DeleteRangeAction {
	return &DeleteRangeAction{edit: newEdit(t, true), Range: r}
}

// Do deletes the range.
func (a *DeleteRangeAction) Do() error {
	a.prepare()
	changed, err := a.target.DeleteRangeRaw(a.Range)
	if err != nil {
		err = fmt.Errorf("delete range %s: %w", a.Range, err)
	}
	return a.finish(changed, err)
}

// Description returns a human-readable description.
func (a *DeleteRangeAction) Description() string {
	r := a.Range.Normalize()
	if r.Start.Row == r.End.Row {
		return fmt.Sprintf("Delete %d characters", r.End.Column-r.Start.Column)
	}
	return fmt.Sprintf("Delete %d lines", r.End.Row-r.Start.Row+1)
}

// CompoundAction groups multiple actions as one undo unit.
type CompoundAction struct {
	Name    string
	Actions []Action
}

// NewCompoundAction creates a new compound action.
func NewCompoundAction(name string, actions ...Action) *CompoundAction {
	return &CompoundAction{Name: name, Actions: actions}
}

// Do runs all actions in order.
func (c *CompoundAction) Do() error {
	for i, a := range c.Actions {
		if err := a.Do(); err != nil {
			// On error, try to undo what we've done
			for j := i - 1; j >= 0; j-- {
				_ = c.Actions[j].Undo()
			}
			return fmt.Errorf("compound action '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all actions in reverse order.
func (c *CompoundAction) Undo() error {
	for i := len(c.Actions) - 1; i >= 0; i-- {
		if err := c.Actions[i].Undo(); err != nil {
			return fmt.Errorf("undo compound action '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound action's name.
func (c *CompoundAction) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Actions) == 1 {
		return c.Actions[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Actions))
}

// Changed reports whether any grouped action modified the document.
func (c *CompoundAction) Changed() bool {
	for _, a := range c.Actions {
		if IsChange(a) {
			return true
		}
	}
	return false
}

// IsChange reports whether a modified the document the last time it ran.
// Actions that do not track this are assumed to have changed it.
func IsChange(a Action) bool {
	if c, ok := a.(interface{ Changed() bool }); ok {
		return c.Changed()
	}
	return true
}
