// Package diagnostics provides the doctor checks for the reconciler's
// external dependencies.
//
// Unlike the 'compare' package which runs the reconciliation itself, this
// package validates that the configured sources and sinks are reachable and
// well formed before a run is attempted.
//
// # Checks Provided
//
//   - Inventory: probes the Netskope endpoint with a single-page fetch and
//     counts the applications the extractor finds in the answer.
//   - Sheet: resolves the configured worksheet and column and counts the
//     distinct names.
//   - Storage: verifies the artifact bucket exists.
//   - History: verifies the run-ledger table carries every column the
//     RunRecord model declares.
//
// # HTTP Endpoints
//
//   - GET /diagnostics : Runs all checks.
//
// A check whose dependency is not configured reports "skipped" rather than
// failing; the aggregate status degrades only on real failures.
package diagnostics
