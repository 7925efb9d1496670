// Package logger provides the demo's logging interface.
// Components log through Logger without knowing where the output goes:
// stderr for interactive commands, a rotating file while the list screen
// owns the terminal.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "RADIODEMO_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// writerLogger implements Logger on top of the standard log package.
type writerLogger struct {
	l      *log.Logger
	prefix string
	debug  bool
}

// New returns a logger writing to w. Debug messages are written when debug
// is true or DebugEnv is set.
func New(w io.Writer, prefix string, debug bool) Logger {
	return &writerLogger{
		l:      log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		prefix: prefix,
		debug:  debug || os.Getenv(DebugEnv) != "",
	}
}

func (l *writerLogger) printf(level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case l.prefix != "" && level != "":
		l.l.Printf("%s %s: %s", l.prefix, level, msg)
	case l.prefix != "":
		l.l.Printf("%s %s", l.prefix, msg)
	case level != "":
		l.l.Printf("%s: %s", level, msg)
	default:
		l.l.Print(msg)
	}
}

func (l *writerLogger) Debug(format string, args ...any) {
	if l.debug {
		l.printf("DEBUG", format, args...)
	}
}

func (l *writerLogger) Info(format string, args ...any) {
	l.printf("", format, args...)
}

func (l *writerLogger) Warn(format string, args ...any) {
	l.printf("WARN", format, args...)
}

func (l *writerLogger) Error(format string, args ...any) {
	l.printf("ERROR", format, args...)
}

// FileOptions configures a rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// OpenFile returns a rotating writer for opts.Path. Close it when done.
func OpenFile(opts FileOptions) io.WriteCloser {
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 5
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}
	return &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...any) { l.add("debug", format, args...) }
func (l *BufferLogger) Info(format string, args ...any)  { l.add("info", format, args...) }
func (l *BufferLogger) Warn(format string, args ...any)  { l.add("warn", format, args...) }
func (l *BufferLogger) Error(format string, args ...any) { l.add("error", format, args...) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(os.Stderr, "", false)
)

// Default returns the process-wide logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Nil installs Noop.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if l == nil {
		l = Noop()
	}
	defaultLogger = l
}
