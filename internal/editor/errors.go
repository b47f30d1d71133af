package editor

import "errors"

// Editor errors.
var (
	// ErrUnknownAction indicates no action is registered under a name.
	ErrUnknownAction = errors.New("editor: unknown action")
)
