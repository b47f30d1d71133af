package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/MatejSimek1/TextEditor/internal/config"
	"github.com/MatejSimek1/TextEditor/internal/renderer"
)

// Run runs the script when one was given, otherwise the terminal view.
// It returns when the script finishes or the user quits.
func (app *Application) Run() error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true
	defer func() { app.running = false }()

	if app.Headless() {
		return app.runScript()
	}
	return app.runTerminal()
}

// runScript runs the Lua script and prints the resulting document.
func (app *Application) runScript() error {
	log := app.logger.WithComponent("script")
	log.Info("running %s", app.opts.ScriptPath)

	if err := app.plugins.DoFile(app.opts.ScriptPath); err != nil {
		log.Error("%v", err)
		return err
	}
	if _, err := app.doc.Engine.WriteTo(app.opts.Stdout); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// runTerminal opens the screen, starts the config watcher and runs the
// event loop.
func (app *Application) runTerminal() error {
	screen := app.opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return &InitError{Component: "screen", Err: err}
		}
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	screen.EnablePaste()
	app.screen = screen

	opts := renderer.DefaultOptions()
	opts.Name = app.doc.Name()
	opts.Logger = app.logger.WithComponent("renderer")
	r := renderer.New(screen, app.editor, opts)
	r.SetSaveHandler(app.Save)
	app.mu.Lock()
	app.renderer = r
	app.mu.Unlock()

	if err := app.startWatcher(); err != nil {
		// The editor still works without live reload.
		app.logger.Warn("config watcher: %v", err)
	}

	app.logger.Info("event loop started")
	err := r.Run()
	app.logger.Info("event loop stopped")
	return err
}

// startWatcher reloads the config file on change. Reloads are applied on
// the event loop goroutine.
func (app *Application) startWatcher() error {
	if app.opts.ConfigPath == "" {
		return nil
	}

	r := app.renderer
	w, err := config.Watch(app.opts.ConfigPath,
		func(cfg *config.Config) {
			_ = r.PostFunc(func() { app.applyConfig(cfg) })
		},
		config.WithErrorHandler(func(err error) {
			_ = r.PostFunc(func() {
				app.logger.Warn("config reload: %v", err)
				r.SetError(err)
			})
		}),
	)
	if err != nil {
		return err
	}
	app.watcher = w
	return nil
}

// Save writes the document to its file.
func (app *Application) Save() error {
	if err := app.doc.Save(); err != nil {
		app.logger.Error("save: %v", err)
		return err
	}
	app.logger.Info("saved %s", app.doc.Path)
	return nil
}

// Shutdown releases every component. It is safe to call more than once.
func (app *Application) Shutdown() error {
	if app.closed {
		return nil
	}
	app.closed = true

	var errs []error
	if app.watcher != nil {
		errs = append(errs, app.watcher.Close())
	}
	if app.renderer != nil {
		app.renderer.Close()
	}
	if app.screen != nil {
		app.screen.Fini()
	}
	if app.plugins != nil {
		app.plugins.Close()
	}
	if app.mirror != nil {
		app.mirror.Disable()
	}
	if app.logger != nil {
		app.logger.Info("shutdown")
	}
	errs = append(errs, app.closeLog())

	return errors.Join(errs...)
}
