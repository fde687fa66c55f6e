package log

import (
	"fmt"
	"strings"

	"github.com/stormyhs/fox/ansi"
)

// Level ranks severity. Critical is rank 1 and always prints; the process
// level names the most verbose rank that still prints, so the default
// LevelDebug lets everything through.
type Level int32

const (
	LevelCritical Level = iota + 1
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelCritical:
		return "CRITICAL"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to its rank, case-insensitively. Unknown
// names return an error so callers can leave the current level untouched.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "critical":
		return LevelCritical, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// tag renders the fixed-width colored level column.
func (l Level) tag() string {
	return l.color() + fmt.Sprintf("%-8s", l.String()) + ansi.Reset
}

func (l Level) color() string {
	switch l {
	case LevelCritical:
		return ansi.Critical
	case LevelError:
		return ansi.Error
	case LevelWarn:
		return ansi.Warn
	case LevelInfo:
		return ansi.Info
	default:
		return ansi.Debug
	}
}
