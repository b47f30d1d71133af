// Package app wires the engine, editor, clipboard, configuration, Lua host
// and terminal view into a runnable application.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/MatejSimek1/TextEditor/internal/clipboard"
	"github.com/MatejSimek1/TextEditor/internal/config"
	"github.com/MatejSimek1/TextEditor/internal/editor"
	"github.com/MatejSimek1/TextEditor/internal/plugin"
	"github.com/MatejSimek1/TextEditor/internal/renderer"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// FilePath is the file to edit. Empty opens a scratch document.
	FilePath string

	// ScriptPath runs a Lua script headless instead of opening the terminal.
	ScriptPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// ReadOnly opens the document in read-only mode.
	ReadOnly bool

	// Screen is the terminal screen. Nil creates one with tcell.NewScreen.
	Screen tcell.Screen

	// Stdout receives the document after a headless script run.
	Stdout io.Writer

	// ClipboardProvider is the system clipboard. Nil uses the OS clipboard.
	ClipboardProvider clipboard.Provider
}

// Application owns every component of a running editor.
type Application struct {
	opts   Options
	config *config.Config
	logger *Logger
	logOut io.Closer

	doc       *Document
	editor    *editor.Editor
	clipboard *clipboard.Stack
	mirror    *clipboard.SystemMirror
	plugins   *plugin.Host

	// mu guards renderer for Interrupt.
	mu       sync.Mutex
	screen   tcell.Screen
	renderer *renderer.Renderer
	watcher  *config.Watcher

	running bool
	closed  bool
}

// New creates an Application and initializes its components.
func New(opts Options) (*Application, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Plugins returns the Lua host.
func (app *Application) Plugins() *plugin.Host {
	return app.plugins
}

// Renderer returns the terminal view, or nil outside the terminal loop.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.renderer
}

// Interrupt asks a running terminal loop to stop. It may be called from any
// goroutine, for example a signal handler.
func (app *Application) Interrupt() {
	if r := app.Renderer(); r != nil {
		_ = r.Stop()
	}
}

// Headless reports whether the application runs a script instead of the
// terminal view.
func (app *Application) Headless() bool {
	return app.opts.ScriptPath != ""
}
