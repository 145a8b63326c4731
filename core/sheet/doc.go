// Package sheet reads and writes the tabular side of a reconciliation run.
//
// The spreadsheet is a black-box source behind three operations: ReadColumn
// pulls the ordered application-name column out of an xlsx worksheet or a
// csv file, WriteTable renders a report table into a fresh workbook, and
// HighlightRows writes a copy of a workbook with the rows named in a target
// set filled in soft yellow, which is how missing applications are marked
// up for review.
//
// A worksheet or column that does not exist surfaces as a *NotFoundError
// whose message enumerates what the source actually offers.
package sheet
