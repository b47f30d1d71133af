package editor

import (
	"github.com/MatejSimek1/TextEditor/internal/engine/cursor"
)

// Action names for the built-in commands.
const (
	ActionMoveLeft      = "cursor.moveLeft"
	ActionMoveRight     = "cursor.moveRight"
	ActionMoveUp        = "cursor.moveUp"
	ActionMoveDown      = "cursor.moveDown"
	ActionSelectLeft    = "cursor.selectLeft"
	ActionSelectRight   = "cursor.selectRight"
	ActionSelectUp      = "cursor.selectUp"
	ActionSelectDown    = "cursor.selectDown"
	ActionDocumentStart = "cursor.documentStart"
	ActionDocumentEnd   = "cursor.documentEnd"
	ActionSelectAll     = "cursor.selectAll"

	ActionNewline        = "editor.newline"
	ActionDeleteBackward = "editor.deleteBackward"
	ActionDeleteForward  = "editor.deleteForward"
	ActionClearDocument  = "editor.clearDocument"
	ActionUndo           = "editor.undo"
	ActionRedo           = "editor.redo"

	ActionCopy        = "clipboard.copy"
	ActionCut         = "clipboard.cut"
	ActionPaste       = "clipboard.paste"
	ActionPasteAndPop = "clipboard.pasteAndPop"
)

func move(d cursor.Direction, extend bool) ActionFunc {
	return func(ed *Editor) error {
		ed.Move(d, extend)
		return nil
	}
}

func registerBuiltins(r *Registry) {
	r.Register(ActionMoveLeft, move(cursor.Left, false))
	r.Register(ActionMoveRight, move(cursor.Right, false))
	r.Register(ActionMoveUp, move(cursor.Up, false))
	r.Register(ActionMoveDown, move(cursor.Down, false))
	r.Register(ActionSelectLeft, move(cursor.Left, true))
	r.Register(ActionSelectRight, move(cursor.Right, true))
	r.Register(ActionSelectUp, move(cursor.Up, true))
	r.Register(ActionSelectDown, move(cursor.Down, true))
	r.Register(ActionDocumentStart, func(ed *Editor) error { return ed.CursorToDocumentStart() })
	r.Register(ActionDocumentEnd, func(ed *Editor) error { return ed.CursorToDocumentEnd() })
	r.Register(ActionSelectAll, func(ed *Editor) error { return ed.SelectAll() })

	r.Register(ActionNewline, func(ed *Editor) error { return ed.InsertNewline() })
	r.Register(ActionDeleteBackward, func(ed *Editor) error { return ed.DeleteBackward() })
	r.Register(ActionDeleteForward, func(ed *Editor) error { return ed.DeleteForward() })
	r.Register(ActionClearDocument, func(ed *Editor) error { return ed.ClearDocument() })
	r.Register(ActionUndo, func(ed *Editor) error { return ed.engine.Undo() })
	r.Register(ActionRedo, func(ed *Editor) error { return ed.engine.Redo() })

	r.Register(ActionCopy, func(ed *Editor) error {
		ed.Copy()
		return nil
	})
	r.Register(ActionCut, func(ed *Editor) error { return ed.Cut() })
	r.Register(ActionPaste, func(ed *Editor) error { return ed.Paste() })
	r.Register(ActionPasteAndPop, func(ed *Editor) error { return ed.PasteAndPop() })
}
