// Package logger is the logging seam of the statusbox CLI and demos.
// A Bubble Tea program owns the terminal while it runs, so anything logged
// during a demo goes to the file set up by ToFile.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "STATUSBOX_DEBUG"

// DefaultLogFile is where ToFile writes when no path is given.
const DefaultLogFile = "statusbox-debug.log"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DebugEnabled reports whether STATUSBOX_DEBUG is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// ToFile points the standard logger at path (DefaultLogFile when empty) so
// log lines don't corrupt the TUI. Callers close the returned file on exit.
func ToFile(path string) (io.Closer, error) {
	if path == "" {
		path = DefaultLogFile
	}
	f, err := tea.LogToFile(path, "statusbox")
	if err != nil {
		return nil, fmt.Errorf("open debug log %s: %w", path, err)
	}
	return f, nil
}

// envLogger writes through the standard logger. Debug lines are dropped
// unless STATUSBOX_DEBUG is set.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects STATUSBOX_DEBUG.
// prefix is prepended to every line (e.g. "[pager]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) printf(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if level != "" {
		msg = level + ": " + msg
	}
	if l.prefix != "" {
		msg = l.prefix + " " + msg
	}
	log.Print(msg)
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if DebugEnabled() {
		l.printf("", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.printf("", format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.printf("WARN", format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// LogMessage is a captured log line.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{Messages: make([]LogMessage, 0)}
}

func (l *BufferLogger) add(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.add("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.add("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.add("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.add("error", format, args...) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains returns true if any captured message contains substr.
func (l *BufferLogger) Contains(substr string) bool {
	for _, m := range l.Messages {
		if strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default returns the package-wide logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-wide logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
