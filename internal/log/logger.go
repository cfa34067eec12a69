// Package log provides component-tagged structured logging on log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldID        = "id"
	FieldCategory  = "category"
	FieldPrice     = "price"
	FieldCount     = "count"
	FieldPath      = "path"
	FieldError     = "error"
)

// Component names.
const (
	ComponentCLI     = "cli"
	ComponentTracker = "tracker"
	ComponentStorage = "storage"
	ComponentIndex   = "index"
	ComponentConfig  = "config"
)

// Logger wraps slog.Logger with a component tag.
// base carries every attribute except the component, so the tag can be
// swapped without repeating it.
type Logger struct {
	*slog.Logger
	base *slog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// DefaultConfig logs warnings and above to stderr so stdout stays reserved for command output.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelWarn,
		Component: ComponentCLI,
		Output:    os.Stderr,
	}
}

// New creates a logger from config.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	base := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: config.Level}))
	return newTagged(base, config.Component)
}

// Discard returns a logger that drops everything. Used as the zero-value default.
func Discard() *Logger {
	return newTagged(slog.New(slog.NewTextHandler(io.Discard, nil)), "")
}

func newTagged(base *slog.Logger, component string) *Logger {
	l := &Logger{Logger: base, base: base}
	if component != "" {
		l.Logger = base.With(FieldComponent, component)
	}
	return l
}

// With returns a new logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
		base:   l.base.With(args...),
	}
}

// WithComponent returns a logger tagged with a different component name.
func (l *Logger) WithComponent(component string) *Logger {
	return newTagged(l.base, component)
}
