// Package text implements the normalizer/tokenizer contract: deterministic,
// idempotent normalization plus whitespace tokenization. Matching, vocabulary
// construction, and persistence keys all go through Normalize.
package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases, replaces punctuation with spaces, and collapses
// whitespace. Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits text into normalized word tokens, in order.
// Two texts differing only in case/punctuation/whitespace tokenize
// identically. Single-character words are kept: in conversational text
// they carry signal ("i", "u", "4").
func Tokenize(s string) []string {
	fields := strings.Fields(Normalize(s))
	if len(fields) == 0 {
		return nil
	}
	return fields
}
