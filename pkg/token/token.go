// Package token normalizes free text into deduplicated token sequences
// used for similarity scoring.
package token

import "strings"

// Tokenize normalizes text into an ordered sequence of unique tokens.
//
// Every rune that is not ASCII alphanumeric or whitespace is stripped,
// the remainder is lowercased and split on runs of whitespace, and later
// duplicates are discarded so each token keeps its first-occurrence
// position. First-occurrence order carries no weight in scoring but keeps
// the output deterministic.
//
// Empty input yields an empty, non-nil slice. Tokenize never fails and
// has no side effects.
func Tokenize(text string) []string {
	normalized := strings.Map(normalizeRune, text)

	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// normalizeRune lowercases ASCII letters, keeps digits and whitespace,
// and drops everything else.
func normalizeRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
		return r
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
		return r
	default:
		return -1
	}
}
