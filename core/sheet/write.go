package sheet

import (
	"fmt"

	"app-reconciler/core/report"

	"github.com/tealeg/xlsx/v2"
)

// WriteTable renders a report table into a new single-worksheet workbook at
// path, header row first.
func WriteTable(path, sheetName string, table report.Table) error {
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	f := xlsx.NewFile()
	s, err := f.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("sheet: add worksheet: %w", err)
	}

	headerRow := s.AddRow()
	for _, cell := range table.Header {
		headerRow.AddCell().SetString(cell)
	}
	for _, row := range table.Rows {
		r := s.AddRow()
		for _, cell := range row {
			r.AddCell().SetString(cell)
		}
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("sheet: save workbook: %w", err)
	}
	return nil
}
