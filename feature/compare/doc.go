// Package compare runs spreadsheet-against-cloud comparison runs.
//
// A run loads both name sources concurrently (the configured spreadsheet
// column and the extracted cloud inventory), reconciles them, and publishes
// the three comparison artifacts: the missing-names text list, the
// side-by-side CSV and the presence-matrix CSV, all named with one shared
// run stamp. A publish failure aborts the remaining writes of the run;
// retention pruning and history recording are best-effort and only warn.
//
// When a run-history recorder is wired in, every published run is appended
// to the ledger.
//
// # HTTP Endpoints
//
//   - POST /compare/run : full run, publishes artifacts and records history.
//   - GET /compare/preview : reconcile both sources without publishing.
//   - GET /compare/runs : recent ledger rows (supports ?limit=N).
package compare
