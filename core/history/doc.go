// Package history persists the run-history ledger.
//
// Every comparison run is summarized into one RunRecord row: distinct name
// counts on both sides, the two difference sizes, the run duration and the
// names of the published artifacts. The ledger is optional infrastructure:
// when no database is reachable the application runs without history and
// only logs a warning.
//
// Records are stored through GORM over the core/database connector (MySQL
// in production, sqlite for local runs and tests). The Recorder migrates
// its own table on construction.
package history
