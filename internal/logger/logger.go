package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level tags each entry. Debug entries are dropped unless the logger was built with debug enabled.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelPrefix = map[Level]string{
	LevelDebug: "[DEBUG] ",
	LevelInfo:  "[INFO] ",
	LevelWarn:  "[WARN] ",
	LevelError: "[ERROR] ",
}

// Options configures a Logger. The zero value writes to stdout and keeps no log file.
type Options struct {
	Out      io.Writer // user-visible diagnostics; nil means os.Stdout
	FilePath string    // optional log file, appended to with timestamps
	Debug    bool
}

// Logger keeps every entry in memory, prints it to Out, and appends it with a timestamp to the log file if one is set.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	path  string
	debug bool
	lines []string
}

// New returns a Logger. If a log file is configured its directory is created.
func New(opts Options) *Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.FilePath != "" {
		_ = os.MkdirAll(filepath.Dir(opts.FilePath), 0755)
	}
	return &Logger{out: out, path: opts.FilePath, debug: opts.Debug, lines: make([]string, 0)}
}

// Discard returns a Logger that records lines in memory but prints nothing.
func Discard() *Logger {
	return New(Options{Out: io.Discard})
}

func (l *Logger) Debugf(format string, args ...any) { l.Log(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.Log(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.Log(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.Log(LevelError, fmt.Sprintf(format, args...)) }

// Log records one entry. Each file entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(level Level, msg string) {
	if level == LevelDebug && !l.debug {
		return
	}
	line := levelPrefix[level] + msg

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	fmt.Fprintln(l.out, line)

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, _ = f.WriteString("[" + ts + "] " + line + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
