package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when none is configured, relative to the working directory.
const DefaultPath = "logs/slotmachine.txt"

// MaxLines is how many recent lines a Logger keeps in memory.
const MaxLines = 1000

// Level is the severity written in front of each line.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger keeps recent lines in memory, appends every line to a file on disk and echoes it to an
// io.Writer (stderr by default). Each entry is prefixed with [timestamp] LEVEL.
type Logger struct {
	mu    sync.Mutex
	path  string
	echo  io.Writer
	now   func() time.Time
	lines []string
	max   int
}

// New returns a Logger writing to path (DefaultPath if empty) and ensures its directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, echo: os.Stderr, now: time.Now, max: MaxLines}
}

// Discard returns a Logger that only keeps lines in memory.
func Discard() *Logger {
	return &Logger{now: time.Now, max: MaxLines}
}

// SetEcho sets where lines are echoed; nil disables echoing.
func (l *Logger) SetEcho(w io.Writer) {
	l.mu.Lock()
	l.echo = w
	l.mu.Unlock()
}

// Path returns the log file path, or "" for an in-memory logger.
func (l *Logger) Path() string {
	return l.path
}

// Log appends a line at level.
func (l *Logger) Log(level Level, line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + string(level) + " " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if n := len(l.lines); l.max > 0 && n > l.max {
		// Drop the oldest; the file keeps the full history.
		copy(l.lines, l.lines[n-l.max:])
		l.lines = l.lines[:l.max]
	}
	echo := l.echo
	l.mu.Unlock()

	if echo != nil {
		_, _ = io.WriteString(echo, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

func (l *Logger) Infof(format string, args ...any) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.Log(LevelWarn, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.Log(LevelError, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the most recent MaxLines lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
