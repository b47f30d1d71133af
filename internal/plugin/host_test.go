package plugin

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/MatejSimek1/TextEditor/internal/editor"
	"github.com/MatejSimek1/TextEditor/internal/engine"
)

func newTestHost(t *testing.T, content string, opts ...Option) *Host {
	t.Helper()
	ed := editor.New(engine.New(engine.WithContent(content)), nil)
	h := NewHost(ed, opts...)
	t.Cleanup(h.Close)
	return h
}

func mustRun(t *testing.T, h *Host, code string) {
	t.Helper()
	if err := h.DoString(code); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}
}

func globalInt(h *Host, name string) int {
	return int(lua.LVAsNumber(h.L.GetGlobal(name)))
}

func TestInsertAndText(t *testing.T) {
	h := newTestHost(t, "")
	mustRun(t, h, `ed.insert("hello") ; result = ed.text()`)

	if got := h.Editor().Engine().Text(); got != "hello" {
		t.Errorf("text = %q", got)
	}
	if got := lua.LVAsString(h.L.GetGlobal("result")); got != "hello" {
		t.Errorf("result = %q", got)
	}
}

func TestRequireModule(t *testing.T) {
	h := newTestHost(t, "")
	mustRun(t, h, `local m = require("ed") ; m.insert("x")`)

	if got := h.Editor().Engine().Text(); got != "x" {
		t.Errorf("text = %q", got)
	}
}

func TestLines(t *testing.T) {
	h := newTestHost(t, "a\nbb\nccc")
	mustRun(t, h, `
		local ls = ed.lines()
		count = #ls
		second = ls[2]
		n = ed.line_count()
		first = ed.line(0)
	`)

	if globalInt(h, "count") != 3 || globalInt(h, "n") != 3 {
		t.Errorf("count = %d, n = %d", globalInt(h, "count"), globalInt(h, "n"))
	}
	if got := lua.LVAsString(h.L.GetGlobal("second")); got != "bb" {
		t.Errorf("second = %q", got)
	}
	if got := lua.LVAsString(h.L.GetGlobal("first")); got != "a" {
		t.Errorf("first = %q", got)
	}
}

func TestMoveExtendsSelection(t *testing.T) {
	h := newTestHost(t, "hello")
	mustRun(t, h, `
		ed.move("right", true)
		ed.move("right", true)
		r1, c1, r2, c2 = ed.selection()
		moved = ed.move("left")
	`)

	if globalInt(h, "c1") != 0 || globalInt(h, "c2") != 2 {
		t.Errorf("selection = (%d:%d)-(%d:%d)",
			globalInt(h, "r1"), globalInt(h, "c1"), globalInt(h, "r2"), globalInt(h, "c2"))
	}
	if h.L.GetGlobal("moved") != lua.LTrue {
		t.Error("expected move to report true")
	}
	if h.Editor().Engine().HasSelection() {
		t.Error("plain move should collapse the selection")
	}
}

func TestMoveUnknownDirection(t *testing.T) {
	h := newTestHost(t, "abc")
	if err := h.DoString(`ed.move("sideways")`); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestCursorAndSelect(t *testing.T) {
	h := newTestHost(t, "hello\nworld")
	mustRun(t, h, `
		row, col = ed.cursor(1, 2)
		ed.select(0, 1, 0, 4)
	`)

	if globalInt(h, "row") != 1 || globalInt(h, "col") != 2 {
		t.Errorf("cursor = (%d:%d)", globalInt(h, "row"), globalInt(h, "col"))
	}
	e := h.Editor().Engine()
	if got := e.SelectionText(); got != "ell" {
		t.Errorf("selection text = %q", got)
	}
	if e.Cursor().Column != 4 {
		t.Errorf("cursor = %v", e.Cursor())
	}
}

func TestDeleteFunctions(t *testing.T) {
	h := newTestHost(t, "hello\nworld")
	mustRun(t, h, `
		ed.delete_range(0, 3, 1, 2)
		ed.cursor(0, 1)
		ed.delete_before()
		ed.delete_after()
	`)

	if got := h.Editor().Engine().Text(); got != "lrld" {
		t.Errorf("text = %q", got)
	}
}

func TestOutOfRangeRaises(t *testing.T) {
	h := newTestHost(t, "abc")

	err := h.DoString(`ed.delete_range(0, 0, 5, 0)`)
	if err == nil {
		t.Fatal("expected error")
	}
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("expected ScriptError, got %T", err)
	}
	if !strings.Contains(err.Error(), "delete_range") {
		t.Errorf("error = %v", err)
	}
	if h.Editor().Engine().Text() != "abc" {
		t.Error("document changed on error")
	}
}

func TestUndoRedo(t *testing.T) {
	h := newTestHost(t, "")
	mustRun(t, h, `
		ed.insert("a")
		undone = ed.undo()
		again = ed.undo()
		redone = ed.redo()
	`)

	if h.L.GetGlobal("undone") != lua.LTrue || h.L.GetGlobal("again") != lua.LFalse {
		t.Error("unexpected undo results")
	}
	if h.L.GetGlobal("redone") != lua.LTrue {
		t.Error("expected redo to report true")
	}
	if got := h.Editor().Engine().Text(); got != "a" {
		t.Errorf("text = %q", got)
	}
}

func TestTransactionUndoesAsOneStep(t *testing.T) {
	h := newTestHost(t, "")
	mustRun(t, h, `
		ed.transaction("pair", function()
			ed.insert("(")
			ed.insert(")")
		end)
	`)

	e := h.Editor().Engine()
	if e.Text() != "()" {
		t.Fatalf("text = %q", e.Text())
	}
	if got := e.History().UndoCount(); got != 1 {
		t.Errorf("undo entries = %d, want 1", got)
	}
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "" {
		t.Errorf("text after undo = %q", e.Text())
	}
}

func TestTransactionError(t *testing.T) {
	h := newTestHost(t, "")

	err := h.DoString(`
		ed.insert("a")
		ed.transaction("bad", function()
			ed.insert("b")
			error("boom")
		end)
	`)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v", err)
	}

	e := h.Editor().Engine()
	if e.History().IsGrouping() {
		t.Error("group left open after failed transaction")
	}
	if e.Text() != "a" {
		t.Errorf("text = %q, want failed edits rolled back", e.Text())
	}
	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "" {
		t.Errorf("text after undo = %q", e.Text())
	}
}

func TestUndoInsideTransactionRaises(t *testing.T) {
	h := newTestHost(t, "")

	err := h.DoString(`ed.transaction("t", function() ed.insert("x") ed.undo() end)`)
	if err == nil || !strings.Contains(err.Error(), engine.ErrGrouping.Error()) {
		t.Errorf("error = %v", err)
	}
	if got := h.Editor().Engine().Text(); got != "" {
		t.Errorf("text = %q", got)
	}
}

func TestClipboardFunctions(t *testing.T) {
	h := newTestHost(t, "hello")
	mustRun(t, h, `
		ed.select(0, 0, 0, 2)
		copied = ed.copy()
		ed.cut()
		ed.cursor(0, 3)
		ed.paste()
		ed.paste(true)
	`)

	if h.L.GetGlobal("copied") != lua.LTrue {
		t.Error("expected copy to report true")
	}
	if got := h.Editor().Engine().Text(); got != "llohehe" {
		t.Errorf("text = %q", got)
	}
	if got := h.Editor().Clipboard().Len(); got != 1 {
		t.Errorf("clipboard depth = %d, want 1", got)
	}
}

func TestExecAndActions(t *testing.T) {
	h := newTestHost(t, "abc")
	mustRun(t, h, `
		ed.exec("cursor.documentEnd")
		ed.exec("editor.deleteBackward")
		count = #ed.actions()
	`)

	if got := h.Editor().Engine().Text(); got != "ab" {
		t.Errorf("text = %q", got)
	}
	if globalInt(h, "count") != len(h.Editor().Actions()) {
		t.Errorf("actions = %d", globalInt(h, "count"))
	}

	if err := h.DoString(`ed.exec("no.such.action")`); err == nil {
		t.Error("expected unknown action error")
	}
}

func TestRegisterAction(t *testing.T) {
	h := newTestHost(t, "")
	mustRun(t, h, `ed.register("user.shout", function() ed.insert("!") end)`)

	ed := h.Editor()
	if err := ed.Execute("user.shout"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := ed.Engine().Text(); got != "!" {
		t.Errorf("text = %q", got)
	}

	// Registered actions can be run from Lua too.
	mustRun(t, h, `ed.exec("user.shout")`)
	if got := ed.Engine().Text(); got != "!!" {
		t.Errorf("text = %q", got)
	}

	if got := h.RegisteredActions(); len(got) != 1 || got[0] != "user.shout" {
		t.Errorf("registered = %v", got)
	}

	h.Close()
	if ed.Registry().Has("user.shout") {
		t.Error("Close should unregister Lua actions")
	}
}

func TestPrintOutput(t *testing.T) {
	var out bytes.Buffer
	h := newTestHost(t, "", WithOutput(&out))
	mustRun(t, h, `print("lines", ed.line_count())`)

	if got := out.String(); got != "lines\t1\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSandbox(t *testing.T) {
	h := newTestHost(t, "")
	mustRun(t, h, `sandboxed = dofile == nil and loadfile == nil and io == nil and os == nil and package.path == ""`)

	if h.L.GetGlobal("sandboxed") != lua.LTrue {
		t.Error("unsafe globals are reachable")
	}
}

func TestTimeout(t *testing.T) {
	h := newTestHost(t, "", WithTimeout(50*time.Millisecond))

	err := h.DoString(`while true do end`)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestReadOnlyRaises(t *testing.T) {
	ed := editor.New(engine.New(engine.WithReadOnly()), nil)
	h := NewHost(ed)
	defer h.Close()

	err := h.DoString(`ed.insert("x")`)
	if err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Errorf("error = %v", err)
	}
}

func TestDoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lua")
	if err := os.WriteFile(path, []byte(`ed.insert("from file")`), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newTestHost(t, "")
	if err := h.DoFile(path); err != nil {
		t.Fatalf("DoFile failed: %v", err)
	}
	if got := h.Editor().Engine().Text(); got != "from file" {
		t.Errorf("text = %q", got)
	}

	err := h.DoFile(filepath.Join(t.TempDir(), "missing.lua"))
	var se *ScriptError
	if !errors.As(err, &se) || !strings.HasSuffix(se.Source, "missing.lua") {
		t.Errorf("error = %v", err)
	}
}

func TestClosedHost(t *testing.T) {
	h := newTestHost(t, "")
	h.Close()

	if err := h.DoString(`ed.insert("x")`); !errors.Is(err, ErrHostClosed) {
		t.Errorf("expected ErrHostClosed, got %v", err)
	}
}
