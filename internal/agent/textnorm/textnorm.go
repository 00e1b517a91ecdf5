// Package textnorm holds the small amount of text handling the strategies
// share: Unicode case folding and bag-of-words tokenization.
package textnorm

import (
	"regexp"

	"golang.org/x/text/cases"
)

// tokenPattern matches runs of two or more letters, digits or underscores,
// the same token shape a default count vectorizer extracts.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	// Casers keep state, so a fresh one is built per call.
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Tokenize folds s and splits it into word tokens in order of appearance.
// Single-character words are dropped.
func Tokenize(s string) []string {
	return tokenPattern.FindAllString(Fold(s), -1)
}
