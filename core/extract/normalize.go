package extract

import "strings"

// Normalize canonicalizes a raw name for identity and ordering comparisons.
// It trims surrounding whitespace, collapses internal whitespace runs to a
// single space, and lowercases the result. Total and idempotent.
//
// Display spellings are never normalized; the canonical form is only ever
// used as a comparison and sort key.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
