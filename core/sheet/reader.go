package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"app-reconciler/core/extract"

	"github.com/tealeg/xlsx/v2"
)

// ReadColumn reads the application-name column from the source: the full
// cell grid first, then the configured column. Cells are trimmed; blank
// cells are kept and left for the name set to drop.
func ReadColumn(path, sheetName, selector string, hasHeader bool) ([]string, error) {
	rows, err := ReadRows(path, sheetName)
	if err != nil {
		return nil, err
	}
	return Column(rows, selector, hasHeader)
}

// ReadRows loads the full cell grid of one worksheet. The file extension
// decides the format: .csv is read as a flat single-sheet source, anything
// else opens as a workbook.
func ReadRows(path, sheetName string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSVRows(path)
	}
	return readXLSXRows(path, sheetName)
}

// Column extracts one column from a cell grid. With a header row the
// selector matches a header cell by normalized form and the header row is
// excluded from the result; without one it is a 1-based column number
// (empty selects the first column). Rows too short for the column are
// skipped.
func Column(rows [][]string, selector string, hasHeader bool) ([]string, error) {
	if len(rows) == 0 {
		return []string{}, nil
	}

	var header []string
	start := 0
	if hasHeader {
		header = rows[0]
		start = 1
	}
	index, err := resolveColumn(header, selector, hasHeader)
	if err != nil {
		return nil, err
	}

	column := make([]string, 0, len(rows)-start)
	for _, row := range rows[start:] {
		if index >= len(row) {
			continue
		}
		column = append(column, strings.TrimSpace(row[index]))
	}
	return column, nil
}

// resolveColumn turns the selector into a 0-based column index. With a
// header row the selector matches a header cell by normalized form; without
// one it is a 1-based number, empty meaning the first column.
func resolveColumn(header []string, selector string, hasHeader bool) (int, error) {
	if hasHeader {
		want := extract.Normalize(selector)
		for i, cell := range header {
			if extract.Normalize(cell) == want {
				return i, nil
			}
		}
		return 0, &NotFoundError{Kind: "column", Requested: selector, Available: trimmedCells(header)}
	}
	if strings.TrimSpace(selector) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(selector))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("sheet: column selector %q is not a header name or 1-based number", selector)
	}
	return n - 1, nil
}

func readXLSXRows(path, sheetName string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open workbook: %w", err)
	}

	s, err := pickSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		rows = append(rows, cellStrings(row))
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are fine
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sheet: read csv: %w", err)
	}
	return rows, nil
}

func pickSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name == "" {
		if len(f.Sheets) == 0 {
			return nil, &NotFoundError{Kind: "sheet", Requested: "(first)", Available: []string{}}
		}
		return f.Sheets[0], nil
	}
	if s, ok := f.Sheet[name]; ok {
		return s, nil
	}
	return nil, &NotFoundError{Kind: "sheet", Requested: name, Available: sheetNames(f)}
}

func sheetNames(f *xlsx.File) []string {
	names := make([]string, 0, len(f.Sheets))
	for _, s := range f.Sheets {
		names = append(names, s.Name)
	}
	return names
}

func cellStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		cells[i] = cell.String()
	}
	return cells
}

func trimmedCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
