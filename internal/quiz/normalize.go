package quiz

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize prepares an answer for comparison: surrounding whitespace is
// trimmed and the text is put through Unicode full case folding. Folding,
// unlike a plain lowercase, maps "ß" and "ẞ" to "ss" and folds umlaut case
// pairs, so German spellings like "GROSS" and "groß" compare equal.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Equivalent reports whether a learner's input matches the canonical
// answer under Normalize. Matching is exact-string after folding; no
// semantic equivalence is attempted.
func Equivalent(input, answer string) bool {
	return Normalize(input) == Normalize(answer)
}
