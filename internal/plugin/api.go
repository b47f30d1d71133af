package plugin

import (
	"fmt"
	"slices"

	lua "github.com/yuin/gopher-lua"

	"github.com/MatejSimek1/TextEditor/internal/editor"
	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
	"github.com/MatejSimek1/TextEditor/internal/engine/cursor"
)

// ModuleName is the name of the global table and the require name.
const ModuleName = "ed"

// install registers the ed module into the Lua state.
func (h *Host) install() {
	loader := func(L *lua.LState) int {
		L.Push(h.module(L))
		return 1
	}
	h.L.PreloadModule(ModuleName, loader)
	h.L.SetGlobal(ModuleName, h.module(h.L))
}

func (h *Host) module(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		// Document
		"text":       h.text,
		"lines":      h.lines,
		"line":       h.line,
		"line_count": h.lineCount,

		// Editing
		"insert":        h.insert,
		"delete_before": h.deleteBefore,
		"delete_after":  h.deleteAfter,
		"delete_range":  h.deleteRange,

		// Cursor and selection
		"cursor":    h.cursor,
		"move":      h.move,
		"select":    h.selectRange,
		"selection": h.selection,

		// History
		"undo":        h.undo,
		"redo":        h.redo,
		"transaction": h.transaction,

		// Clipboard
		"copy":  h.copy,
		"cut":   h.cut,
		"paste": h.paste,

		// Actions
		"exec":     h.exec,
		"actions":  h.listActions,
		"register": h.register,
	})
}

// check raises a Lua error for err.
func check(L *lua.LState, op string, err error) {
	if err != nil {
		L.RaiseError("%s: %v", op, err)
	}
}

// checkLocation reads a (row, column) pair starting at argument n.
func checkLocation(L *lua.LState, n int) buffer.Location {
	return buffer.Loc(L.CheckInt(n), L.CheckInt(n+1))
}

// text() -> string
func (h *Host) text(L *lua.LState) int {
	L.Push(lua.LString(h.ed.Engine().Text()))
	return 1
}

// lines() -> table
// Returns the lines as a Lua array.
func (h *Host) lines(L *lua.LState) int {
	tbl := L.NewTable()
	for _, line := range h.ed.Engine().AllLines() {
		tbl.Append(lua.LString(line))
	}
	L.Push(tbl)
	return 1
}

// line(row) -> string
func (h *Host) line(L *lua.LState) int {
	row := L.CheckInt(1)
	e := h.ed.Engine()
	if row < 0 || row >= e.LineCount() {
		L.ArgError(1, fmt.Sprintf("row %d out of range", row))
		return 0
	}
	L.Push(lua.LString(e.Line(row)))
	return 1
}

// line_count() -> number
func (h *Host) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.ed.Engine().LineCount()))
	return 1
}

// insert(text)
// Inserts text at the cursor, replacing the selection.
func (h *Host) insert(L *lua.LState) int {
	check(L, "insert", h.ed.Insert(L.CheckString(1)))
	return 0
}

// delete_before()
func (h *Host) deleteBefore(L *lua.LState) int {
	check(L, "delete_before", h.ed.Engine().DeleteBefore())
	return 0
}

// delete_after()
func (h *Host) deleteAfter(L *lua.LState) int {
	check(L, "delete_after", h.ed.Engine().DeleteAfter())
	return 0
}

// delete_range(r1, c1, r2, c2)
func (h *Host) deleteRange(L *lua.LState) int {
	r := buffer.NewRange(checkLocation(L, 1), checkLocation(L, 3))
	check(L, "delete_range", h.ed.Engine().DeleteRange(r))
	return 0
}

// cursor([row, col]) -> row, col
// With arguments the cursor moves there first.
func (h *Host) cursor(L *lua.LState) int {
	e := h.ed.Engine()
	if L.GetTop() >= 2 {
		check(L, "cursor", e.SetCursor(checkLocation(L, 1)))
	}
	at := e.Cursor()
	L.Push(lua.LNumber(at.Row))
	L.Push(lua.LNumber(at.Column))
	return 2
}

// move(direction [, extend]) -> bool
// Moves the cursor one step and reports whether it moved.
func (h *Host) move(L *lua.LState) int {
	d, ok := cursor.ParseDirection(L.CheckString(1))
	if !ok {
		L.ArgError(1, "direction must be left, right, up or down")
		return 0
	}
	L.Push(lua.LBool(h.ed.Move(d, L.OptBool(2, false))))
	return 1
}

// select(r1, c1, r2, c2)
// Selects from (r1, c1) to (r2, c2) and puts the cursor at the end.
func (h *Host) selectRange(L *lua.LState) int {
	start, end := checkLocation(L, 1), checkLocation(L, 3)
	e := h.ed.Engine()
	check(L, "select", e.SetCursor(end))
	check(L, "select", e.SetSelectionRange(buffer.NewRange(start, end)))
	return 0
}

// selection() -> r1, c1, r2, c2
func (h *Host) selection(L *lua.LState) int {
	r := h.ed.Engine().SelectionRange()
	L.Push(lua.LNumber(r.Start.Row))
	L.Push(lua.LNumber(r.Start.Column))
	L.Push(lua.LNumber(r.End.Row))
	L.Push(lua.LNumber(r.End.Column))
	return 4
}

// undo() -> bool
// Returns whether anything was undone.
func (h *Host) undo(L *lua.LState) int {
	e := h.ed.Engine()
	before := e.CanUndo()
	check(L, "undo", e.Undo())
	L.Push(lua.LBool(before))
	return 1
}

// redo() -> bool
func (h *Host) redo(L *lua.LState) int {
	e := h.ed.Engine()
	before := e.CanRedo()
	check(L, "redo", e.Redo())
	L.Push(lua.LBool(before))
	return 1
}

// transaction(name, fn)
// Runs fn so that its edits undo as one step.
func (h *Host) transaction(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	err := h.ed.Engine().Transaction(name, func() error {
		return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	})
	check(L, "transaction", err)
	return 0
}

// copy() -> bool
func (h *Host) copy(L *lua.LState) int {
	L.Push(lua.LBool(h.ed.Copy()))
	return 1
}

// cut()
func (h *Host) cut(L *lua.LState) int {
	check(L, "cut", h.ed.Cut())
	return 0
}

// paste([pop])
// With pop the top entry is removed from the clipboard.
func (h *Host) paste(L *lua.LState) int {
	if L.OptBool(1, false) {
		check(L, "paste", h.ed.PasteAndPop())
	} else {
		check(L, "paste", h.ed.Paste())
	}
	return 0
}

// exec(name)
// Runs a named editor action.
func (h *Host) exec(L *lua.LState) int {
	name := L.CheckString(1)
	check(L, "exec", h.ed.Execute(name))
	return 0
}

// actions() -> table
func (h *Host) listActions(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range h.ed.Actions() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// register(name, fn)
// Adds fn to the editor's action registry so key bindings and exec can run it.
func (h *Host) register(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	h.ed.Registry().Register(name, func(*editor.Editor) error {
		return h.run(name, func() error {
			return h.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
		})
	})
	if !slices.Contains(h.actions, name) {
		h.actions = append(h.actions, name)
	}
	h.logger.Debug("plugin: registered action %s", name)
	return 0
}
