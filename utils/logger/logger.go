package logger

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level tags one line of output.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Sink is the destination for log lines: an append-only writer that can be
// brought into the user's view. editor.OutputChannel satisfies it.
type Sink interface {
	io.Writer
	Show()
}

// Logger writes severity-tagged, timestamped lines to a single sink.
// Safe for concurrent use across multiple goroutines.
type Logger struct {
	mu      sync.Mutex
	sink    Sink
	enabled bool
	onBreak func()
}

// Option configures a Logger at construction time.
type Option func(*Logger)

// WithDebug sets whether debug-level lines are emitted. Defaults to off.
func WithDebug(enabled bool) Option {
	return func(l *Logger) {
		l.enabled = enabled
	}
}

// WithBreakpoint installs a diagnostic hook fired before every warn and
// error line is written. Defaults to a no-op.
func WithBreakpoint(hook func()) Option {
	return func(l *Logger) {
		l.onBreak = hook
	}
}

// New creates a Logger writing to sink.
func New(sink Sink, opts ...Option) *Logger {
	l := &Logger{sink: sink}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetEnabled toggles debug-level emission. Info, warn and error lines are
// always written regardless of this flag.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

// Debug writes a DEBUG-tagged line, or nothing when debug output is off.
func (l *Logger) Debug(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	l.write(LevelDebug, values)
}

// Info writes an INFO-tagged line.
func (l *Logger) Info(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(LevelInfo, values)
}

// Warn writes a WARN-tagged line and fires the breakpoint hook.
func (l *Logger) Warn(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.breakpoint()
	l.write(LevelWarn, values)
}

// Error writes an ERROR-tagged line, fires the breakpoint hook, and brings
// the sink into the user's view.
func (l *Logger) Error(values ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.breakpoint()
	l.write(LevelError, values)
	l.sink.Show()
}

func (l *Logger) breakpoint() {
	if l.onBreak != nil {
		l.onBreak()
	}
}

// write emits one line. Logging is a terminal sink for diagnostics: write
// failures are swallowed, never surfaced to the caller.
func (l *Logger) write(level Level, values []any) {
	stamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%s %s %s\n", level, stamp, renderValues(values))
	_, _ = io.WriteString(l.sink, line)
}
