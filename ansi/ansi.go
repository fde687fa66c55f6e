// Package ansi defines the fixed escape palette fox renders with. The
// exported constants are raw SGR prefixes; every styled span ends with Reset.
// The palette is not configurable: fox emits one numeric escape scheme
// everywhere so that highlighted output stays byte-stable.
package ansi

// Reset clears all terminal styling; the remaining constants are the base
// attribute and color prefixes used across fox.
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"
	Faint = "\x1b[2m"

	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"

	BrightBlack   = "\x1b[90m"
	BrightRed     = "\x1b[91m"
	BrightGreen   = "\x1b[92m"
	BrightYellow  = "\x1b[93m"
	BrightBlue    = "\x1b[94m"
	BrightMagenta = "\x1b[95m"
	BrightCyan    = "\x1b[96m"
)

// Semantic aliases for the highlighted token classes. Each class gets a
// distinct prefix; Boolean and Null differ even though one classifier finds
// both.
const (
	String  = BrightGreen
	Number  = Magenta
	Boolean = "\x1b[1;33m"
	Null    = Faint
	Key     = Cyan
	Bracket = BrightBlack
)

// Semantic aliases for the log line furniture: one bold bright color per
// level tag, plus the time and caller columns.
const (
	Debug    = "\x1b[1;94m"
	Info     = "\x1b[1;92m"
	Warn     = "\x1b[1;93m"
	Error    = "\x1b[1;91m"
	Critical = "\x1b[1;95m"

	Timestamp = "\x1b[1;90m"
	Caller    = Faint
)
