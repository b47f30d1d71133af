package plugin

import (
	"errors"
	"fmt"
)

// Errors returned by the host.
var (
	// ErrHostClosed is returned when running code on a closed host.
	ErrHostClosed = errors.New("lua host is closed")

	// ErrTimeout is returned when a script runs longer than the host allows.
	ErrTimeout = errors.New("lua execution timeout")
)

// ScriptError describes a script that failed to run.
type ScriptError struct {
	Source string // File path or chunk name
	Err    error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
