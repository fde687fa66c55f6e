// Package highlight colorizes single lines of text for terminal display.
// It finds quoted strings, numbers, boolean and null-like literals, key
// labels, and brackets, and wraps each in a fixed ANSI color. Earlier
// classes win overlaps outright, so a number inside a quoted string stays
// string-colored and the digits around the colon in 12:34 never become a
// key label.
//
// Highlight is pure and total: the same input always produces the same
// output, and input that should not be styled (empty, very long, or already
// carrying escape codes) comes back unchanged. Running the output through
// Highlight again is a no-op.
package highlight

import (
	"regexp"
	"strings"
)

// escapeRe matches a terminal color or style sequence: the control sequence
// introducer, a numeric parameter tail, and the SGR final byte.
var escapeRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ContainsMarkup reports whether text already carries terminal styling.
// Highlight refuses such input to stay idempotent; callers can also use it
// to skip highlighting work they know is already done.
func ContainsMarkup(text string) bool {
	return escapeRe.MatchString(text)
}

// Highlight returns text with recognized tokens wrapped in ANSI colors.
// Unrecognized regions are copied verbatim, so stripping the escape codes
// from the result always yields the input again.
func Highlight(text string) string {
	spans := resolve(text)
	if len(spans) == 0 {
		return text
	}
	return render(text, spans)
}

// render stitches the output left to right: the verbatim gap before each
// span, then its replacement, then the verbatim tail. Any span that does
// not line up with the walk means the resolver state is inconsistent, and
// the input is returned unchanged rather than emitting garbled text.
func render(text string, spans []span) string {
	var b strings.Builder
	b.Grow(len(text) + len(spans)*16)
	cursor := 0
	for _, sp := range spans {
		if sp.start < cursor || sp.end > len(text) {
			return text
		}
		b.WriteString(text[cursor:sp.start])
		b.WriteString(sp.repl)
		cursor = sp.end
	}
	b.WriteString(text[cursor:])
	return b.String()
}
