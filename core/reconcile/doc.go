// Package reconcile implements the name-reconciliation engine: it compares
// two name sets, one read from a spreadsheet column and one extracted from
// the cloud inventory, and derives three report shapes from the comparison.
//
// # Reports
//
// 1. Missing: file names whose normalized form is absent from the cloud set,
// display spellings, sorted by normalized name.
//
// 2. Side by side: both deduplicated display lists independently sorted by
// normalized name and paired by position, the shorter list padded with empty
// strings. The pairing is positional, for visual scanning of two parallel
// sorted lists; it makes no per-row match claim.
//
// 3. Presence: the sorted union of both normalized sets with per-source
// membership flags.
//
// # Semantics
//
// Each input is deduplicated by normalized name with the first-seen raw
// spelling retained for display. The engine is pure and synchronous: given
// the same two inputs it produces the same result, every output list is
// sorted by normalized key or position-preserving, and empty inputs are
// valid on either side. Set comparison only; the two sources are never
// merged.
package reconcile
