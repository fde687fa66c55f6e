package highlight

import (
	"regexp"
	"sync"
)

// class identifies one token class the pattern bank can match. The numeric
// order is the precedence order: when two classes claim overlapping text,
// the lower value wins because it scanned first.
type class int

const (
	classString class = iota + 1
	classNumber
	classLiteral
	classKeyLabel
	classBracket
)

// classifier pairs a token class with its compiled matcher.
type classifier struct {
	class class
	re    *regexp.Regexp
}

var (
	bankOnce sync.Once
	bank     []classifier
)

// patternBank returns the classifiers in precedence order. The bank is
// compiled on first use and shared by every caller afterwards, so programs
// that never highlight anything never pay for the compilation.
func patternBank() []classifier {
	bankOnce.Do(func() {
		bank = []classifier{
			// Quoted strings, double or single, honoring backslash
			// escapes. An unterminated quote matches nothing.
			{classString, regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)},
			// Integers and simple decimals on word boundaries, so the
			// digits inside identifiers like x12 stay unstyled.
			{classNumber, regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)},
			// Boolean and null-like literals as whole words,
			// case-sensitive.
			{classLiteral, regexp.MustCompile(`\b(?:true|false|null|undefined|None|nil)\b`)},
			// A run of word characters directly followed by a colon,
			// the shape of a key label or map key.
			{classKeyLabel, regexp.MustCompile(`\w+:`)},
			// Single bracket, brace, or parenthesis characters.
			{classBracket, regexp.MustCompile(`[\[\]{}()]`)},
		}
	})
	return bank
}
