// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections (sqlite for local runs and tests) based on the application's
// configuration. The database is optional: it only backs the run-history ledger,
// and a failed connection degrades the application to running without history.
//
// # Connect
//
// The generic Connect function establishes a connection to the database based on
// the configured driver. MySQL connections carry connect/read/write timeouts in
// the DSN; sqlite connects to a file path or :memory:.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// diagnostics checks to verify that the run-history table carries the expected
// columns. It works against both supported drivers.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "run_records")
package database
