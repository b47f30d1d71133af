package renderer

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/MatejSimek1/TextEditor/internal/editor"
)

// Actions handled by the renderer itself rather than the editor registry.
const (
	ActionSave = "file.save"
	ActionQuit = "app.quit"
)

// Chord identifies a key press.
type Chord struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// String returns a readable form such as "Ctrl+Z" or "Alt+v".
func (c Chord) String() string {
	return tcell.NewEventKey(c.Key, c.Rune, c.Mod).Name()
}

// ChordOf returns the normalized chord of a key event.
//
// Control keys already encode Ctrl in their key code, so the Ctrl modifier
// is dropped for them. Rune keys drop Shift because the rune carries it.
func ChordOf(ev *tcell.EventKey) Chord {
	c := Chord{Key: ev.Key(), Mod: ev.Modifiers()}
	switch {
	case c.Key == tcell.KeyRune:
		c.Rune = ev.Rune()
		c.Mod &^= tcell.ModShift
	case c.Key <= tcell.KeyUS || c.Key == tcell.KeyDEL:
		c.Mod &^= tcell.ModCtrl
	}
	return c
}

// Keymap maps key chords to action names.
type Keymap struct {
	bindings map[Chord]string
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[Chord]string)}
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	k := NewKeymap()

	k.BindKey(tcell.KeyLeft, tcell.ModNone, editor.ActionMoveLeft)
	k.BindKey(tcell.KeyRight, tcell.ModNone, editor.ActionMoveRight)
	k.BindKey(tcell.KeyUp, tcell.ModNone, editor.ActionMoveUp)
	k.BindKey(tcell.KeyDown, tcell.ModNone, editor.ActionMoveDown)
	k.BindKey(tcell.KeyLeft, tcell.ModShift, editor.ActionSelectLeft)
	k.BindKey(tcell.KeyRight, tcell.ModShift, editor.ActionSelectRight)
	k.BindKey(tcell.KeyUp, tcell.ModShift, editor.ActionSelectUp)
	k.BindKey(tcell.KeyDown, tcell.ModShift, editor.ActionSelectDown)
	k.BindKey(tcell.KeyHome, tcell.ModNone, editor.ActionDocumentStart)
	k.BindKey(tcell.KeyEnd, tcell.ModNone, editor.ActionDocumentEnd)
	k.BindKey(tcell.KeyCtrlA, tcell.ModNone, editor.ActionSelectAll)

	k.BindKey(tcell.KeyEnter, tcell.ModNone, editor.ActionNewline)
	k.BindKey(tcell.KeyBackspace, tcell.ModNone, editor.ActionDeleteBackward)
	k.BindKey(tcell.KeyBackspace2, tcell.ModNone, editor.ActionDeleteBackward)
	k.BindKey(tcell.KeyDelete, tcell.ModNone, editor.ActionDeleteForward)
	k.BindKey(tcell.KeyCtrlZ, tcell.ModNone, editor.ActionUndo)
	k.BindKey(tcell.KeyCtrlY, tcell.ModNone, editor.ActionRedo)

	k.BindKey(tcell.KeyCtrlC, tcell.ModNone, editor.ActionCopy)
	k.BindKey(tcell.KeyCtrlX, tcell.ModNone, editor.ActionCut)
	k.BindKey(tcell.KeyCtrlV, tcell.ModNone, editor.ActionPaste)
	k.BindRune('v', tcell.ModAlt, editor.ActionPasteAndPop)

	k.BindKey(tcell.KeyCtrlS, tcell.ModNone, ActionSave)
	k.BindKey(tcell.KeyCtrlQ, tcell.ModNone, ActionQuit)

	return k
}

// BindKey binds a non-rune key.
func (k *Keymap) BindKey(key tcell.Key, mod tcell.ModMask, action string) {
	k.bindings[Chord{Key: key, Mod: mod}] = action
}

// BindRune binds a rune key with modifiers.
func (k *Keymap) BindRune(r rune, mod tcell.ModMask, action string) {
	k.bindings[Chord{Key: tcell.KeyRune, Rune: r, Mod: mod}] = action
}

// Unbind removes the binding for c.
func (k *Keymap) Unbind(c Chord) {
	delete(k.bindings, c)
}

// Lookup returns the action bound to ev.
func (k *Keymap) Lookup(ev *tcell.EventKey) (string, bool) {
	action, ok := k.bindings[ChordOf(ev)]
	return action, ok
}

// Bindings returns every chord bound to action, ordered by name.
func (k *Keymap) Bindings(action string) []Chord {
	var out []Chord
	for c, a := range k.bindings {
		if a == action {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
