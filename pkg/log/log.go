package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Emojis for different log types
const (
	infoEmoji    = "ℹ️ "
	successEmoji = "✅ "
	errorEmoji   = "❌ "
	warnEmoji    = "⚠️ "
	stepEmoji    = "👉 "
	debugEmoji   = "🔍 "
	loadingEmoji = "⏳ "
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	stepColor    = color.New(color.FgCyan)
	debugColor   = color.New(color.Faint)
)

// Logger struct with debug flag
type Logger struct {
	debug bool
	mu    sync.Mutex
	out   io.Writer
}

// New creates a new logger writing to stderr
func New(debug bool) *Logger {
	return NewWithWriter(debug, os.Stderr)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(debug bool, w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{debug: debug, out: w}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *Logger {
	return NewWithWriter(false, io.Discard)
}

// formatMessage adds padding and wraps long lines
func formatMessage(msg string) string {
	width := 80
	lines := strings.Split(msg, "\n")
	var formatted []string

	for _, line := range lines {
		if len(line) <= width {
			formatted = append(formatted, line)
			continue
		}

		words := strings.Fields(line)
		current := ""
		for _, word := range words {
			if len(current)+len(word)+1 > width {
				formatted = append(formatted, current)
				current = word
			} else {
				if current == "" {
					current = word
				} else {
					current += " " + word
				}
			}
		}
		if current != "" {
			formatted = append(formatted, current)
		}
	}

	return strings.Join(formatted, "\n")
}

func (l *Logger) print(c *color.Color, emoji, format string, args ...interface{}) {
	msg := formatMessage(fmt.Sprintf(format, args...))
	l.mu.Lock()
	defer l.mu.Unlock()
	c.Fprintln(l.out, emoji+msg)
}

// Info prints an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.print(infoColor, infoEmoji, format, args...)
}

// Success prints a success message
func (l *Logger) Success(format string, args ...interface{}) {
	l.print(successColor, successEmoji, format, args...)
}

// Error prints an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.print(errorColor, errorEmoji, format, args...)
}

// Warning prints a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.print(warnColor, warnEmoji, format, args...)
}

// Step prints a step message
func (l *Logger) Step(format string, args ...interface{}) {
	l.print(stepColor, stepEmoji, format, args...)
}

// Loading prints a progress message for a long-running call
func (l *Logger) Loading(format string, args ...interface{}) {
	l.print(stepColor, loadingEmoji, format, args...)
}

// Debug prints a debug message if debug is enabled
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.print(debugColor, debugEmoji, format, args...)
}

// IsDebug returns whether debug logging is enabled
func (l *Logger) IsDebug() bool {
	return l.debug
}
