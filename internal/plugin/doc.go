// Package plugin embeds a Lua runtime that scripts the editor.
//
// Scripts see a global table named ed (also available through
// require("ed")) whose functions drive the engine, the selection, the history
// and the clipboard:
//
//	ed.insert("hello")
//	ed.move("left", true)          -- extend the selection one rune left
//	ed.transaction("wrap", function()
//	  ed.insert("(")
//	  ed.paste()
//	  ed.insert(")")
//	end)
//	ed.register("user.upper", function()
//	  local r1, c1, r2, c2 = ed.selection()
//	  ...
//	end)
//
// Rows and columns are 0-based, as in the engine.
//
// The Lua state only opens the base, package, table, string and math libraries,
// removes dofile, loadfile, load and loadstring, and empties package.path so
// require only finds preloaded modules. gopher-lua states are not
// goroutine-safe, so a Host must only be used from one goroutine.
package plugin
