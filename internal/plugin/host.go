package plugin

import (
	"context"
	"errors"
	"io"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/MatejSimek1/TextEditor/internal/editor"
)

// DefaultTimeout bounds a single script run or Lua action call.
const DefaultTimeout = 5 * time.Second

// Logger is the logging surface the host needs.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Host.
type Option func(*Host)

// WithOutput sets where print writes. The default discards output.
func WithOutput(w io.Writer) Option {
	return func(h *Host) {
		h.output = w
	}
}

// WithTimeout sets the run limit. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) {
		h.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// Host runs Lua scripts against an editor.
type Host struct {
	L      *lua.LState
	ed     *editor.Editor
	output io.Writer

	timeout time.Duration
	logger  Logger

	// Actions registered from Lua, removed from the editor on Close.
	actions []string

	running bool
	closed  bool
}

// NewHost creates a Lua host bound to ed and installs the ed module.
func NewHost(ed *editor.Editor, opts ...Option) *Host {
	h := &Host{
		ed:      ed,
		output:  io.Discard,
		timeout: DefaultTimeout,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(h)
	}

	h.L = newState(h.output)
	h.install()
	return h
}

// Editor returns the editor scripts act on.
func (h *Host) Editor() *editor.Editor {
	return h.ed
}

// DoString runs a chunk of Lua code.
func (h *Host) DoString(code string) error {
	return h.run("<string>", func() error {
		return h.L.DoString(code)
	})
}

// DoFile runs the Lua file at path.
func (h *Host) DoFile(path string) error {
	return h.run(path, func() error {
		return h.L.DoFile(path)
	})
}

// RegisteredActions returns the names of the actions scripts registered.
func (h *Host) RegisteredActions() []string {
	out := make([]string, len(h.actions))
	copy(out, h.actions)
	return out
}

// Close unregisters Lua actions and closes the Lua state.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	for _, name := range h.actions {
		h.ed.Registry().Unregister(name)
	}
	h.actions = nil
	h.L.Close()
}

// run executes fn under the host timeout and wraps failures in a ScriptError.
func (h *Host) run(source string, fn func() error) (err error) {
	if h.closed {
		return ErrHostClosed
	}
	if h.running {
		// Nested calls share the outer run's limit.
		return fn()
	}
	h.running = true
	defer func() { h.running = false }()
	h.logger.Debug("plugin: run %s", source)

	if h.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		h.L.SetContext(ctx)
		defer h.L.RemoveContext()

		defer func() {
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = &ScriptError{Source: source, Err: ErrTimeout}
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			err = &ScriptError{Source: source, Err: panicError{r}}
		}
	}()

	if err := fn(); err != nil {
		return &ScriptError{Source: source, Err: err}
	}
	return nil
}

type panicError struct {
	value any
}

func (p panicError) Error() string {
	if err, ok := p.value.(error); ok {
		return "lua panic: " + err.Error()
	}
	if s, ok := p.value.(string); ok {
		return "lua panic: " + s
	}
	return "lua panic"
}
