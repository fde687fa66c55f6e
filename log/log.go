// Package log prints leveled, colorized lines to stdout. Each level comes
// in two forms: the full form carries a level tag, the wall clock time, and
// the caller's file:line, while the S-prefixed short form carries only the
// tag. Message bodies run through the span highlighter, the level gate is a
// single atomic read, and writes are serialized so concurrent goroutines
// never interleave lines.
package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stormyhs/fox/ansi"
	"github.com/stormyhs/fox/highlight"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout

	current atomic.Int32
)

func init() {
	current.Store(int32(LevelDebug))
}

// SetLevel replaces the process-wide verbosity. Messages print while their
// rank is at or below it, so LevelCritical silences everything else and
// LevelDebug prints it all.
func SetLevel(l Level) {
	current.Store(int32(l))
}

// GetLevel returns the process-wide verbosity.
func GetLevel() Level {
	return Level(current.Load())
}

// SetOutput redirects log output. The default is stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// Debug prints a debug line with the full preamble.
func Debug(format string, args ...any) { emit(LevelDebug, format, args...) }

// Info prints an info line with the full preamble.
func Info(format string, args ...any) { emit(LevelInfo, format, args...) }

// Warn prints a warning line with the full preamble.
func Warn(format string, args ...any) { emit(LevelWarn, format, args...) }

// Error prints an error line with the full preamble.
func Error(format string, args ...any) { emit(LevelError, format, args...) }

// Critical prints a critical line with the full preamble. Critical lines
// survive every verbosity setting.
func Critical(format string, args ...any) { emit(LevelCritical, format, args...) }

// SDebug prints a debug line without the time and caller columns.
func SDebug(format string, args ...any) { emitShort(LevelDebug, format, args...) }

// SInfo prints an info line without the time and caller columns.
func SInfo(format string, args ...any) { emitShort(LevelInfo, format, args...) }

// SWarn prints a warning line without the time and caller columns.
func SWarn(format string, args ...any) { emitShort(LevelWarn, format, args...) }

// SError prints an error line without the time and caller columns.
func SError(format string, args ...any) { emitShort(LevelError, format, args...) }

// SCritical prints a critical line without the time and caller columns.
func SCritical(format string, args ...any) { emitShort(LevelCritical, format, args...) }

func emit(level Level, format string, args ...any) {
	if GetLevel() < level {
		return
	}
	msg := highlight.Highlight(fmt.Sprintf(format, args...))
	write(fmt.Sprintf("%s %s %s %s\n", level.tag(), clock(), callSite(3), msg))
}

func emitShort(level Level, format string, args ...any) {
	if GetLevel() < level {
		return
	}
	msg := highlight.Highlight(fmt.Sprintf(format, args...))
	write(fmt.Sprintf("%s %s\n", level.tag(), msg))
}

func write(line string) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = io.WriteString(out, line)
}

// clock renders the wall time column.
func clock() string {
	return ansi.Timestamp + time.Now().Format("15:04:05") + ansi.Reset
}

// callSite renders the dimmed file:line of the frame skip levels up,
// shortened to the enclosing directory.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ansi.Caller + "???" + ansi.Reset
	}
	short := path.Join(path.Base(path.Dir(file)), path.Base(file))
	return fmt.Sprintf("%s%s:%d%s", ansi.Caller, short, line, ansi.Reset)
}
