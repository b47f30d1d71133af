package clipboard

import (
	"github.com/atotto/clipboard"
)

// Provider is an external clipboard.
type Provider interface {
	Get() (string, error)
	Set(content string) error
}

// SystemProvider reads and writes the operating system clipboard.
type SystemProvider struct{}

// Get returns the system clipboard contents.
func (SystemProvider) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set replaces the system clipboard contents.
func (SystemProvider) Set(content string) error {
	return clipboard.WriteAll(content)
}

// Available reports whether a system clipboard can be used on this host.
func Available() bool {
	return !clipboard.Unsupported
}

// SystemMirror copies the top of a stack to a Provider whenever the stack
// changes. An empty stack leaves the provider untouched.
type SystemMirror struct {
	stack    *Stack
	provider Provider
	enabled  bool

	// OnError is called when the provider fails. It may be nil.
	OnError func(error)
}

// NewSystemMirror creates a mirror from stack to provider.
// A nil provider means SystemProvider.
func NewSystemMirror(stack *Stack, provider Provider) *SystemMirror {
	if provider == nil {
		provider = SystemProvider{}
	}
	return &SystemMirror{stack: stack, provider: provider}
}

// Enable attaches the mirror to its stack and copies the current top.
func (m *SystemMirror) Enable() {
	if m.enabled {
		return
	}
	m.enabled = true
	m.stack.Attach(m)
	m.UpdateClipboard()
}

// Disable detaches the mirror.
func (m *SystemMirror) Disable() {
	if !m.enabled {
		return
	}
	m.enabled = false
	m.stack.Detach(m)
}

// Enabled returns true if the mirror is attached.
func (m *SystemMirror) Enabled() bool {
	return m.enabled
}

// SetEnabled enables or disables the mirror.
func (m *SystemMirror) SetEnabled(on bool) {
	if on {
		m.Enable()
	} else {
		m.Disable()
	}
}

// UpdateClipboard implements event.ClipboardObserver.
func (m *SystemMirror) UpdateClipboard() {
	top, ok := m.stack.Peek()
	if !ok {
		return
	}
	if err := m.provider.Set(top); err != nil && m.OnError != nil {
		m.OnError(err)
	}
}

// Import pushes the provider's current contents onto the stack unless they
// already sit on top. It reports whether anything was pushed.
func (m *SystemMirror) Import() (bool, error) {
	content, err := m.provider.Get()
	if err != nil {
		return false, err
	}
	if content == "" {
		return false, nil
	}
	if top, ok := m.stack.Peek(); ok && top == content {
		return false, nil
	}
	m.stack.Push(content)
	return true, nil
}
