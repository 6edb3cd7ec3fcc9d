// Package highlight wraps QSkinny identifiers and C++ keywords found in
// command descriptions in Markdown inline-code spans.
package highlight

import (
	"regexp"
	"strings"
)

// rule wraps every match of pattern. A leading-space rule only matches after
// a space; the matched space stays inside the span and another one is written
// before it, so "the Skinlet" becomes "the ` Skinlet`".
type rule struct {
	pattern      *regexp.Regexp
	leadingSpace bool
}

// rules run in order; later rules never re-wrap text inside a span produced
// by an earlier one.
var rules = []rule{
	{pattern: regexp.MustCompile(`QSK_SUBCONTROLS?`)},
	{pattern: regexp.MustCompile(`QSK_STATES?`)},
	{pattern: regexp.MustCompile(`QskAspect::FirstUserState`)},
	{pattern: regexp.MustCompile(`QskAspect::FirstSystemState`)},
	{pattern: regexp.MustCompile(`switch`)},
	{pattern: regexp.MustCompile(`case`)},
	{pattern: regexp.MustCompile(`updateSubNode`)},
	{pattern: regexp.MustCompile(`(?i)skinnable`)},
	{pattern: regexp.MustCompile(`(?i) skinlet`), leadingSpace: true},
	{pattern: regexp.MustCompile(`(?i) subcontrol`), leadingSpace: true},
}

// Tokens returns text with every recognized token wrapped in backticks.
// Matching is by substring, so "showcase" becomes "show`case`". Applying
// Tokens to its own output changes nothing.
func Tokens(text string) string {
	for _, r := range rules {
		text = r.apply(text)
	}
	return text
}

func (r rule) apply(text string) string {
	matches := r.pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if insideCodeSpan(text, start) {
			continue
		}
		sb.WriteString(text[last:start])
		if r.leadingSpace {
			sb.WriteByte(' ')
		}
		sb.WriteByte('`')
		sb.WriteString(text[start:end])
		sb.WriteByte('`')
		last = end
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// insideCodeSpan reports whether an odd number of backticks precede pos.
func insideCodeSpan(text string, pos int) bool {
	return strings.Count(text[:pos], "`")%2 == 1
}
