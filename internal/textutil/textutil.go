// Package textutil implements the message cleanup shown by the demo:
// trimming surrounding whitespace and capitalizing the first letter.
package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing runes at or below U+0020, which covers
// the ASCII space and all C0 control characters.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// Capitalize title-cases the first rune of s and leaves the rest untouched.
// The first rune maps to exactly one rune; when its title case is a
// multi-rune sequence (U+00DF becomes "Ss") s is returned unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// Casers are not safe for concurrent use.
	head := cases.Title(language.Und, cases.NoLower).String(s[:size])
	if utf8.RuneCountInString(head) != 1 {
		return s
	}
	return head + s[size:]
}

// Clean trims s and then capitalizes it.
func Clean(s string) string {
	return Capitalize(Trim(s))
}
