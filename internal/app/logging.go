package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError

	// logLevelOff is above every level and silences a logger.
	logLevelOff
)

// DefaultLogPrefix is written before every message of the application
// logger.
const DefaultLogPrefix = "texteditor"

var levelNames = [...]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a level name, in any case, to its LogLevel.
// "warning" is accepted for warn. The boolean is false for unknown names,
// in which case LogLevelInfo is returned.
func ParseLogLevel(s string) (LogLevel, bool) {
	if strings.EqualFold(s, "warning") {
		return LogLevelWarn, true
	}
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(l), true
		}
	}
	return LogLevelInfo, false
}

// sink is the output state shared by a logger and everything derived from
// it, so SetLevel on any of them applies to all.
type sink struct {
	mu     sync.Mutex
	level  LogLevel
	output io.Writer
}

// field is one key=value pair attached to a derived logger.
type field struct {
	key   string
	value any
}

// Logger writes leveled, printf-style log lines. Derived loggers carry
// key=value fields in the order they were added.
type Logger struct {
	sink   *sink
	prefix string
	fields []field
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		sink:   &sink{level: cfg.Level, output: cfg.Output},
		prefix: cfg.Prefix,
	}
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	return &Logger{sink: &sink{level: logLevelOff, output: io.Discard}}
}

// WithField returns a derived logger with key=value appended. A key that is
// already present is replaced in place.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := make([]field, 0, len(l.fields)+1)
	replaced := false
	for _, f := range l.fields {
		if f.key == key {
			f.value = value
			replaced = true
		}
		fields = append(fields, f)
	}
	if !replaced {
		fields = append(fields, field{key: key, value: value})
	}
	return &Logger{sink: l.sink, prefix: l.prefix, fields: fields}
}

// WithComponent returns a derived logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel changes the minimum level for l and every logger sharing its
// output.
func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

// Level returns the minimum log level.
func (l *Logger) Level() LogLevel {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

func (l *Logger) Debug(format string, args ...any) { l.log(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.log(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.log(LogLevelError, format, args) }

// log formats one line as
//
//	2006-01-02T15:04:05.000 [LEVEL] prefix: message {k=v, k=v}
//
// and writes it with a single call.
func (l *Logger) log(level LogLevel, format string, args []any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if level < s.level {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] ", time.Now().Format("2006-01-02T15:04:05.000"), level)
	if l.prefix != "" {
		b.WriteString(l.prefix + ": ")
	}
	b.WriteString(msg)
	for i, f := range l.fields {
		sep := ", "
		if i == 0 {
			sep = " {"
		}
		fmt.Fprintf(&b, "%s%s=%v", sep, f.key, f.value)
	}
	if len(l.fields) > 0 {
		b.WriteByte('}')
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(s.output, b.String())
}

// OpenLogFile opens path for appending log output.
func OpenLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
