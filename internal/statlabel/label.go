// Package statlabel turns compact stat codes such as "xGp90" into readable
// labels such as "Expected goals per 90".
package statlabel

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A word character directly followed by an upper-case ASCII letter.
var camelBoundary = regexp.MustCompile(`([\p{L}\p{N}_])([A-Z])`)

// Format expands abbreviations in code, splits camelCase words and returns the
// result in sentence case. Every input, including "", yields a label.
func Format(code string) string {
	label := code
	for _, r := range rules {
		if strings.Contains(label, r.trigger) {
			label = strings.ReplaceAll(label, r.trigger, r.replacement)
		}
	}
	label = camelBoundary.ReplaceAllString(label, "${1} ${2}")
	return sentenceCase(label)
}

func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	// Casers hold state, so one is built per call.
	lower := cases.Lower(language.Und).String(s)
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToTitle(first)) + lower[size:]
}
