package renderer

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/MatejSimek1/TextEditor/internal/engine"
)

// Run polls screen events until the quit binding fires or the screen is
// finalized.
func (r *Renderer) Run() error {
	if r.closed.Load() {
		return ErrClosed
	}
	if r.dirty {
		r.Render()
	}
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if r.HandleEvent(ev) || r.stopped {
			return nil
		}
		if r.dirty {
			r.Render()
		}
	}
}

// PostFunc queues fn to run on the event loop goroutine.
func (r *Renderer) PostFunc(fn func()) error {
	if r.closed.Load() {
		return ErrClosed
	}
	return r.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// Stop makes Run return after the events already queued. It may be called
// from any goroutine.
func (r *Renderer) Stop() error {
	return r.PostFunc(func() { r.stopped = true })
}

// HandleEvent processes one screen event and reports whether the loop
// should stop.
func (r *Renderer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		r.resize()

	case *tcell.EventPaste:
		if ev.Start() {
			r.pasting = true
			r.paste = r.paste[:0]
			return false
		}
		r.pasting = false
		r.report(r.ed.Insert(string(r.paste)))
		r.paste = r.paste[:0]

	case *tcell.EventKey:
		if r.pasting {
			r.collectPaste(ev)
			return false
		}
		return r.handleKey(ev)

	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	}
	return false
}

// collectPaste buffers a key that arrived inside a bracketed paste.
func (r *Renderer) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		r.paste = append(r.paste, ev.Rune())
	case tcell.KeyEnter:
		r.paste = append(r.paste, []rune(r.engine.LineBreak())...)
	case tcell.KeyTab:
		r.paste = append(r.paste, '\t')
	}
}

func (r *Renderer) handleKey(ev *tcell.EventKey) bool {
	action, bound := r.keymap.Lookup(ev)
	if action != ActionQuit {
		r.quitArmed = false
	}
	if !bound {
		switch {
		case ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) == 0:
			r.report(r.ed.Insert(string(ev.Rune())))
		case ev.Key() == tcell.KeyTab:
			r.report(r.ed.Insert("\t"))
		}
		return false
	}

	r.message = ""
	r.messageErr = false
	r.dirty = true

	switch action {
	case ActionQuit:
		if r.modified && !r.quitArmed {
			r.quitArmed = true
			r.SetMessage("unsaved changes, press " + r.quitKeyName() + " again to quit")
			return false
		}
		return true

	case ActionSave:
		r.save()

	default:
		r.logger.Debug("renderer: %s", action)
		r.report(r.ed.Execute(action))
	}
	return false
}

func (r *Renderer) quitKeyName() string {
	if chords := r.keymap.Bindings(ActionQuit); len(chords) > 0 {
		return chords[0].String()
	}
	return "quit"
}

func (r *Renderer) save() {
	if r.onSave == nil {
		r.SetMessage("no file to save to")
		return
	}
	if err := r.onSave(); err != nil {
		r.SetError(err)
		return
	}
	r.MarkSaved()
	r.SetMessage("saved")
}

// report shows err in the status line. Read-only rejections are shown as a
// plain message.
func (r *Renderer) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, engine.ErrReadOnly):
		r.SetMessage("document is read-only")
	default:
		r.SetError(err)
	}
}
