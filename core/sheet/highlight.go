package sheet

import (
	"fmt"

	"app-reconciler/core/extract"

	"github.com/tealeg/xlsx/v2"
)

// highlightColor is the soft yellow fill used to mark rows (ARGB).
const highlightColor = "FFFFF59D"

// HighlightRows writes a copy of the workbook at inPath to outPath with
// every row whose name-column value, normalized, appears in targets filled
// in soft yellow. The header row is never highlighted and the original
// file is never modified. Returns the number of rows highlighted.
func HighlightRows(inPath, outPath, sheetName, selector string, hasHeader bool, targets map[string]struct{}) (int, error) {
	f, err := xlsx.OpenFile(inPath)
	if err != nil {
		return 0, fmt.Errorf("sheet: open workbook: %w", err)
	}

	s, err := pickSheet(f, sheetName)
	if err != nil {
		return 0, err
	}

	if hasHeader && len(s.Rows) == 0 {
		if err := f.Save(outPath); err != nil {
			return 0, fmt.Errorf("sheet: save workbook: %w", err)
		}
		return 0, nil
	}

	var header []string
	start := 0
	if hasHeader {
		header = cellStrings(s.Rows[0])
		start = 1
	}
	index, err := resolveColumn(header, selector, hasHeader)
	if err != nil {
		return 0, err
	}

	highlighted := 0
	for _, row := range s.Rows[start:] {
		if index >= len(row.Cells) {
			continue
		}
		name := extract.Normalize(row.Cells[index].String())
		if name == "" {
			continue
		}
		if _, ok := targets[name]; !ok {
			continue
		}
		for _, cell := range row.Cells {
			style := xlsx.NewStyle()
			style.Fill = *xlsx.NewFill("solid", highlightColor, highlightColor)
			style.ApplyFill = true
			cell.SetStyle(style)
		}
		highlighted++
	}

	if err := f.Save(outPath); err != nil {
		return 0, fmt.Errorf("sheet: save workbook: %w", err)
	}
	return highlighted, nil
}
