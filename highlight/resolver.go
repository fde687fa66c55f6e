package highlight

import (
	"cmp"
	"slices"
	"strings"

	"github.com/stormyhs/fox/ansi"
)

// maxHighlightLen is the longest input, in bytes, the resolver will scan.
// Longer lines pass through unstyled; they are almost always dumps rather
// than log messages, and styling them costs more than it reads well.
const maxHighlightLen = 1000

// span is one accepted match: a half-open byte range [start, end) of the
// input, the colorized text that replaces it, and the class that claimed it.
type span struct {
	start, end int
	repl       string
	class      class
}

// resolve scans text with every classifier in precedence order and returns
// the accepted spans sorted by start offset. A candidate that overlaps an
// already accepted span is dropped whole, never clipped, so every styled
// region corresponds to one complete match of exactly one classifier.
func resolve(text string) []span {
	if text == "" || len(text) > maxHighlightLen || ContainsMarkup(text) {
		return nil
	}
	var accepted []span
	for _, cl := range patternBank() {
		for _, loc := range cl.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if start >= end {
				continue
			}
			sp := span{
				start: start,
				end:   end,
				repl:  colorize(cl.class, text[start:end]),
				class: cl.class,
			}
			accepted = insert(accepted, sp)
		}
	}
	return accepted
}

// insert adds sp to the accepted set, keeping it sorted by start offset.
// Accepted spans are pairwise disjoint, so sp can only collide with its
// immediate neighbors around the insertion point; if it does, the set is
// returned unchanged.
func insert(accepted []span, sp span) []span {
	idx, _ := slices.BinarySearchFunc(accepted, sp, func(a, b span) int {
		return cmp.Compare(a.start, b.start)
	})
	if idx > 0 && accepted[idx-1].end > sp.start {
		return accepted
	}
	if idx < len(accepted) && sp.end > accepted[idx].start {
		return accepted
	}
	return slices.Insert(accepted, idx, sp)
}

// colorize wraps one raw match in its class color. Key labels keep the
// trailing colon outside the styled region, and the literal class splits
// into boolean and null-like palettes by spelling.
func colorize(cl class, matched string) string {
	switch cl {
	case classString:
		return ansi.String + matched + ansi.Reset
	case classNumber:
		return ansi.Number + matched + ansi.Reset
	case classLiteral:
		if matched == "true" || matched == "false" {
			return ansi.Boolean + matched + ansi.Reset
		}
		return ansi.Null + matched + ansi.Reset
	case classKeyLabel:
		return ansi.Key + strings.TrimSuffix(matched, ":") + ansi.Reset + ":"
	case classBracket:
		return ansi.Bracket + matched + ansi.Reset
	}
	return matched
}
