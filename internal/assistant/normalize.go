// Package assistant implements Clerk's deterministic support engine: text
// normalization, intent classification, slot-filling conversations, and
// permission-gated tool dispatch. The engine is transport-agnostic — chat
// adapters and the HTTP API both feed it the same (message, context) pair.
package assistant

import (
	"regexp"
	"strings"
)

// nonAlnumRe matches runs of characters outside [a-z0-9] after lowercasing.
var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize canonicalizes raw user input: lowercase, non-alphanumeric runs
// collapsed to single spaces, trimmed. It is pure and total — empty input
// yields an empty string — and idempotent, so classifiers can assume their
// input is already in canonical form.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
