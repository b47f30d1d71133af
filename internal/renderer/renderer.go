package renderer

import (
	"errors"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/MatejSimek1/TextEditor/internal/editor"
	"github.com/MatejSimek1/TextEditor/internal/engine"
	"github.com/MatejSimek1/TextEditor/internal/engine/buffer"
)

// ErrClosed is returned when the renderer is used after Close.
var ErrClosed = errors.New("renderer closed")

// Logger is the logging surface the renderer needs.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Options configures the renderer.
type Options struct {
	// Name is the document name shown in the status line.
	Name string

	// TabWidth is the number of cells between tab stops.
	TabWidth int

	// ShowStatusLine reserves the bottom row for the status line.
	ShowStatusLine bool

	// Scrolling
	ScrollMarginVertical   int // Rows to keep above and below the cursor
	ScrollMarginHorizontal int // Cells to keep left and right of the cursor

	Theme  Theme
	Keymap *Keymap
	Logger Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Name:                   "[scratch]",
		TabWidth:               4,
		ShowStatusLine:         true,
		ScrollMarginVertical:   2,
		ScrollMarginHorizontal: 4,
		Theme:                  DefaultTheme(),
	}
}

// Renderer draws an editor onto a tcell screen and feeds key events back
// into it. It observes the engine and the clipboard and repaints on change.
//
// Renderer is not safe for concurrent use. Other goroutines hand work to it
// with PostFunc or Stop, which may race with Close.
type Renderer struct {
	screen tcell.Screen
	ed     *editor.Editor
	engine *engine.Engine
	opts   Options
	keymap *Keymap
	logger Logger

	viewport Viewport
	dirty    bool
	closed   atomic.Bool
	stopped  bool

	// Status
	message    string
	messageErr bool
	undoOK     bool
	redoOK     bool
	savedText  string
	modified   bool
	quitArmed  bool

	// Bracketed paste
	pasting bool
	paste   []rune

	onSave func() error
}

// New creates a renderer for ed on an initialized screen and attaches it to
// the engine and clipboard observers.
func New(screen tcell.Screen, ed *editor.Editor, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	if opts.Keymap == nil {
		opts.Keymap = DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}

	e := ed.Engine()
	r := &Renderer{
		screen:    screen,
		ed:        ed,
		engine:    e,
		opts:      opts,
		keymap:    opts.Keymap,
		logger:    opts.Logger,
		dirty:     true,
		undoOK:    e.CanUndo(),
		redoOK:    e.CanRedo(),
		savedText: e.Text(),
	}
	r.viewport.MarginVertical = opts.ScrollMarginVertical
	r.viewport.MarginHorizontal = opts.ScrollMarginHorizontal
	r.resize()

	e.AttachCursorObserver(r)
	e.AttachTextObserver(r)
	e.AttachHistoryObserver(r)
	ed.Clipboard().Attach(r)

	return r
}

// Close detaches the renderer from its observers. The screen is left to the
// caller.
func (r *Renderer) Close() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}
	r.engine.DetachCursorObserver(r)
	r.engine.DetachTextObserver(r)
	r.engine.DetachHistoryObserver(r)
	r.ed.Clipboard().Detach(r)
}

// Editor returns the editor being rendered.
func (r *Renderer) Editor() *editor.Editor {
	return r.ed
}

// Keymap returns the active key bindings.
func (r *Renderer) Keymap() *Keymap {
	return r.keymap
}

// Viewport returns the current viewport.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// SetName changes the document name shown in the status line.
func (r *Renderer) SetName(name string) {
	r.opts.Name = name
	r.dirty = true
}

// SetSaveHandler installs the function run by the save binding.
func (r *Renderer) SetSaveHandler(fn func() error) {
	r.onSave = fn
}

// SetMessage shows an informational message in the status line.
func (r *Renderer) SetMessage(msg string) {
	r.message = msg
	r.messageErr = false
	r.dirty = true
}

// SetError shows err in the status line.
func (r *Renderer) SetError(err error) {
	if err == nil {
		return
	}
	r.message = err.Error()
	r.messageErr = true
	r.dirty = true
}

// Message returns the current status message.
func (r *Renderer) Message() string {
	return r.message
}

// MarkSaved records the current text as the saved state.
func (r *Renderer) MarkSaved() {
	r.savedText = r.engine.Text()
	r.modified = false
	r.dirty = true
}

// Modified reports whether the text differs from the last saved state.
func (r *Renderer) Modified() bool {
	return r.modified
}

// NeedsRedraw reports whether a change has not been painted yet.
func (r *Renderer) NeedsRedraw() bool {
	return r.dirty
}

// ============================================================================
// Observers
// ============================================================================

// UpdateCursorLocation implements event.CursorObserver.
func (r *Renderer) UpdateCursorLocation(buffer.Location) {
	r.dirty = true
}

// UpdateText implements event.TextObserver.
func (r *Renderer) UpdateText() {
	r.dirty = true
}

// UpdateClipboard implements event.ClipboardObserver.
func (r *Renderer) UpdateClipboard() {
	r.dirty = true
}

// UpdateUndoRedo implements event.HistoryObserver.
func (r *Renderer) UpdateUndoRedo(undoAvailable, redoAvailable bool) {
	r.undoOK = undoAvailable
	r.redoOK = redoAvailable
	r.modified = r.engine.Text() != r.savedText
	r.dirty = true
}

// resize syncs the viewport with the screen size.
func (r *Renderer) resize() {
	w, h := r.screen.Size()
	if r.opts.ShowStatusLine {
		h--
	}
	r.viewport.Resize(w, h)
	r.dirty = true
}
