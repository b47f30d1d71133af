package config

import (
	"errors"
	"fmt"
	"strings"
)

// Default configuration values.
const (
	DefaultLineBreak  = "\n"
	DefaultMaxEntries = 1000
	DefaultLogLevel   = "info"
)

// Config is the complete editor configuration.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	History   HistoryConfig   `toml:"history"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Log       LogConfig       `toml:"log"`
}

// EditorConfig holds document settings.
type EditorConfig struct {
	// LineBreak is the marker used to split and join rows.
	LineBreak string `toml:"line_break"`
	// ReadOnly opens documents without allowing edits.
	ReadOnly bool `toml:"read_only"`
}

// HistoryConfig holds undo/redo settings.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack. The oldest entries are dropped.
	MaxEntries int `toml:"max_entries"`
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	// SystemSync mirrors the top of the clipboard stack to the OS clipboard.
	SystemSync bool `toml:"system_sync"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `toml:"level"`
	// File receives log output. Empty means stderr.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			LineBreak: DefaultLineBreak,
		},
		History: HistoryConfig{
			MaxEntries: DefaultMaxEntries,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

var lineBreakNames = map[string]string{
	"\n":   "\n",
	"\r":   "\r",
	"\r\n": "\r\n",
	"lf":   "\n",
	"cr":   "\r",
	"crlf": "\r\n",
}

// ParseLineBreak returns the marker for a literal marker or one of the names
// lf, cr and crlf.
func ParseLineBreak(s string) (string, bool) {
	marker, ok := lineBreakNames[strings.ToLower(s)]
	return marker, ok
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// LineBreakMarker returns the configured marker, resolving names.
// An invalid setting yields DefaultLineBreak.
func (c *Config) LineBreakMarker() string {
	if marker, ok := ParseLineBreak(c.Editor.LineBreak); ok {
		return marker
	}
	return DefaultLineBreak
}

// Validate checks every setting and returns all failures joined.
// Each failure is a *ValidationError matching ErrValidationFailed.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := ParseLineBreak(c.Editor.LineBreak); !ok {
		errs = append(errs, &ValidationError{
			Path:    "editor.line_break",
			Message: `must be "\n", "\r", "\r\n", lf, cr or crlf`,
			Value:   fmt.Sprintf("%q", c.Editor.LineBreak),
			Code:    ErrCodeInvalidEnum,
		})
	}

	if c.History.MaxEntries <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "history.max_entries",
			Message: "must be greater than 0",
			Value:   c.History.MaxEntries,
			Code:    ErrCodeOutOfRange,
		})
	}

	if !validLevel(c.Log.Level) {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of " + strings.Join(logLevels, ", "),
			Value:   c.Log.Level,
			Code:    ErrCodeInvalidEnum,
		})
	}

	return errors.Join(errs...)
}

func validLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}
