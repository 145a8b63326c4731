package report

import (
	"strings"

	"app-reconciler/core/extract"
	"app-reconciler/core/reconcile"
)

// Header rows for the published artifact shapes.
var (
	EntityHeader     = []string{"Application Name", "Destination Hostnames"}
	SideBySideHeader = []string{"From_File", "From_Netskope"}
	PresenceHeader   = []string{"Application", "In_File", "In_Netskope"}
)

// Table is a header row plus ordered data rows, the shape every tabular
// artifact renders from. Absent fields are empty strings, never a literal
// null.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// EntityTable renders extracted entities as the application/hosts table,
// hosts joined with ", ". Entities arrive sorted from the extractor and
// their order is preserved.
func EntityTable(entities []extract.Entity) Table {
	t := Table{Header: EntityHeader, Rows: make([][]string, 0, len(entities))}
	for _, e := range entities {
		t.Rows = append(t.Rows, []string{e.Name, strings.Join(e.Hosts, ", ")})
	}
	return t
}

// SideBySideTable renders the positional pairing of the two sorted name
// lists.
func SideBySideTable(result *reconcile.Result) Table {
	t := Table{Header: SideBySideHeader, Rows: make([][]string, 0, len(result.SideBySide))}
	for _, pair := range result.SideBySide {
		t.Rows = append(t.Rows, []string{pair.File, pair.Cloud})
	}
	return t
}

// PresenceTable renders the presence matrix with Yes/No cells.
func PresenceTable(result *reconcile.Result) Table {
	t := Table{Header: PresenceHeader, Rows: make([][]string, 0, len(result.Presence))}
	for _, row := range result.Presence {
		t.Rows = append(t.Rows, []string{row.Name, yesNo(row.InFile), yesNo(row.InCloud)})
	}
	return t
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// MissingList renders the missing names as newline-joined plain text.
func MissingList(result *reconcile.Result) string {
	return strings.Join(result.Missing, "\n")
}
