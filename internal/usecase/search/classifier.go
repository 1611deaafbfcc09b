package search

import (
	"strings"
	"unicode/utf8"
)

// Short-query thresholds. Length counts runes, not bytes, so non-ASCII
// symbols and Greek letters in gene names measure the same as ASCII.
const (
	shortQueryMaxTokens = 3
	shortQueryMinRunes  = 15
)

// IsShortSymbolic reports whether a query is short or symbol-like: at most
// 3 whitespace-delimited tokens, or fewer than 15 characters after trimming.
// Gene symbols, allele names, and acronyms fall in this class; vector
// similarity on such strings is unreliable, so the orchestrator biases them
// toward lexical matching and skips rerank and diversification.
func IsShortSymbolic(query string) bool {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < shortQueryMinRunes {
		return true
	}
	return len(strings.Fields(trimmed)) <= shortQueryMaxTokens
}
