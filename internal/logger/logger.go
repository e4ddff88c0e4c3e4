package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const colorReset = "\033[0m"

// theme maps log levels to ANSI color codes. Selected by ui.color_theme.
type theme map[string]string

var themes = map[string]theme{
	"default": {
		"debug": "\033[94m",
		"info":  "\033[92m",
		"warn":  "\033[93m",
		"error": "\033[91m",
	},
	"dark": {
		"debug": "\033[36m",
		"info":  "\033[36m",
		"warn":  "\033[33m",
		"error": "\033[1;31m",
	},
	"light": {
		"debug": "\033[34m",
		"info":  "\033[34m",
		"warn":  "\033[33m",
		"error": "\033[31m",
	},
	"monochrome": {},
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	console *log.Logger
	file    *log.Logger
	level   string
	theme   theme
}

// Options controls logger destinations and presentation.
type Options struct {
	Level     string
	ToConsole bool
	ToFile    bool
	LogDir    string
	Theme     string
}

// New creates a console-only Logger at the given level with the default
// theme.
func New(level string) Logger {
	l, _ := NewWithOptions(Options{Level: level, ToConsole: true, Theme: "default"})
	return l
}

// NewWithOptions creates a Logger writing to console and/or a timestamped
// file under LogDir. A file open failure is returned but the console
// logger is still usable.
func NewWithOptions(opts Options) (Logger, error) {
	l := &implLogger{
		level: strings.ToLower(opts.Level),
		theme: themes[opts.Theme],
	}

	if opts.ToConsole {
		l.console = log.New(os.Stdout, "", log.LstdFlags)
	}

	if opts.ToFile {
		if err := os.MkdirAll(opts.LogDir, 0755); err != nil {
			return l, fmt.Errorf("create log dir: %w", err)
		}
		name := "pipeline-" + time.Now().Format("20060102-150405") + ".log"
		f, err := os.OpenFile(filepath.Join(opts.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return l, fmt.Errorf("open log file: %w", err)
		}
		l.file = log.New(f, "", log.Ldate|log.Ltime)
	}

	return l, nil
}

// newWriterLogger is used by tests to capture output.
func newWriterLogger(w io.Writer, level, themeName string) *implLogger {
	return &implLogger{
		console: log.New(w, "", 0),
		level:   strings.ToLower(level),
		theme:   themes[themeName],
	}
}

func (l *implLogger) shouldLog(level string) bool {
	current, ok := levels[l.level]
	if !ok {
		current = levels["info"]
	}
	target, ok := levels[level]
	if !ok {
		return true
	}
	return target >= current
}

func (l *implLogger) write(level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	line := fmt.Sprintf("[%s] %s", strings.ToUpper(level), fmt.Sprintf(msg, args...))

	if l.console != nil {
		if color := l.theme[level]; color != "" {
			l.console.Print(color + line + colorReset)
		} else {
			l.console.Print(line)
		}
	}
	if l.file != nil {
		l.file.Print(line)
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write("error", msg, args...)
}
