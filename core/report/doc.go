// Package report renders reconciliation and extraction output into the
// published artifact shapes: a header+rows table model, a delimited-text
// form with a strict quoting rule, and named artifacts carrying a per-run
// timestamp token.
//
// The delimited writer is deliberately hand-rolled: a cell is quoted only
// when it contains a comma, a double quote or a newline, and embedded
// quotes are doubled. encoding/csv would additionally quote cells with
// leading whitespace, changing bytes that must round-trip exactly.
package report
