package report

import "strings"

// Delimited renders a table as comma-separated text, header line first,
// every line newline-terminated. The quoting rule: a cell is wrapped in
// double quotes only when it contains a comma, a double quote or a newline;
// embedded double quotes are doubled; everything else is written verbatim.
func Delimited(t Table) string {
	var b strings.Builder
	writeRow(&b, t.Header)
	for _, row := range t.Rows {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCell(cell))
	}
	b.WriteByte('\n')
}

// escapeCell applies the quoting rule to one cell.
func escapeCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
