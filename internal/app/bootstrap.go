package app

import (
	"errors"
	"io"
	"os"

	"github.com/MatejSimek1/TextEditor/internal/clipboard"
	"github.com/MatejSimek1/TextEditor/internal/config"
	"github.com/MatejSimek1/TextEditor/internal/editor"
	"github.com/MatejSimek1/TextEditor/internal/engine"
	"github.com/MatejSimek1/TextEditor/internal/plugin"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.ReadOnly {
		cfg.Editor.ReadOnly = true
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}

	// 3. Document
	engineOpts := []engine.Option{
		engine.WithLineBreak(cfg.LineBreakMarker()),
		engine.WithMaxUndoEntries(cfg.History.MaxEntries),
		engine.WithLogger(app.logger.WithComponent("engine")),
	}
	if cfg.Editor.ReadOnly {
		engineOpts = append(engineOpts, engine.WithReadOnly())
	}
	doc, err := OpenDocument(app.opts.FilePath, engineOpts...)
	if err != nil {
		return &InitError{Component: "document", Err: err}
	}
	app.doc = doc

	// 4. Editor and clipboard
	app.clipboard = clipboard.New()
	app.editor = editor.New(doc.Engine, app.clipboard)
	app.mirror = clipboard.NewSystemMirror(app.clipboard, app.opts.ClipboardProvider)
	app.mirror.OnError = func(err error) {
		app.logger.Warn("clipboard sync: %v", err)
	}
	app.setClipboardSync(cfg.Clipboard.SystemSync)

	// 5. Lua host
	app.plugins = plugin.NewHost(app.editor,
		plugin.WithOutput(app.opts.Stdout),
		plugin.WithLogger(app.logger.WithComponent("plugin")),
	)

	app.logger.Info("opened %s (%d lines)", doc.Name(), doc.Engine.LineCount())
	return nil
}

// initLogger sends log output to the configured file, to stderr when
// running headless, and nowhere otherwise since the terminal owns the screen.
func (app *Application) initLogger() error {
	var out io.Writer = os.Stderr
	switch {
	case app.config.Log.File != "":
		f, err := OpenLogFile(app.config.Log.File)
		if err != nil {
			return err
		}
		out = f
		app.logOut = f
	case !app.Headless():
		out = io.Discard
	}

	level, _ := ParseLogLevel(app.config.Log.Level)
	app.logger = NewLogger(LoggerConfig{
		Level:  level,
		Output: out,
		Prefix: DefaultLogPrefix,
	})
	return nil
}

// setClipboardSync turns OS clipboard mirroring on or off. Turning it on
// first imports the current OS clipboard onto the stack.
func (app *Application) setClipboardSync(on bool) {
	if !on {
		app.mirror.Disable()
		return
	}
	if app.opts.ClipboardProvider == nil && !clipboard.Available() {
		app.logger.Warn("clipboard sync requested but no system clipboard is available")
		return
	}
	if app.mirror.Enabled() {
		return
	}
	if _, err := app.mirror.Import(); err != nil {
		app.logger.Warn("clipboard import: %v", err)
	}
	app.mirror.Enable()
}

// applyConfig applies a reloaded configuration. Settings that shape the
// document itself only take effect on the next start.
func (app *Application) applyConfig(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.ReadOnly {
		cfg.Editor.ReadOnly = true
	}

	if level, ok := ParseLogLevel(cfg.Log.Level); ok {
		app.logger.SetLevel(level)
	}
	app.doc.Engine.History().SetMaxEntries(cfg.History.MaxEntries)
	app.setClipboardSync(cfg.Clipboard.SystemSync)

	if cfg.LineBreakMarker() != app.config.LineBreakMarker() || cfg.Editor.ReadOnly != app.config.Editor.ReadOnly {
		app.logger.Info("line break and read-only changes apply after restart")
	}
	if cfg.Log.File != app.config.Log.File {
		app.logger.Info("log file changes apply after restart")
	}

	app.config = cfg
	app.logger.Info("configuration reloaded")
}

// closeLog closes the log file, if any.
func (app *Application) closeLog() error {
	if app.logOut == nil {
		return nil
	}
	err := app.logOut.Close()
	app.logOut = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}
