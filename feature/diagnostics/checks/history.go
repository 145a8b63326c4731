package checks

import (
	"reflect"
	"strings"

	"app-reconciler/core/database"
	"app-reconciler/core/history"

	"gorm.io/gorm"
)

// HistoryReport is the outcome of the run-ledger schema probe.
type HistoryReport struct {
	Status string `json:"status"`
	// Table is the inspected ledger table.
	Table string `json:"table,omitempty"`
	// MissingColumns lists model columns absent from the table.
	MissingColumns []string `json:"missing_columns,omitempty"`
	// Error carries the failure, if any.
	Error string `json:"error,omitempty"`
}

// History verifies the run-ledger table carries every column the RunRecord
// model declares, with the model's gorm tags as the source of truth. An
// unmigrated sqlite database reports every column missing rather than an
// inspection error.
func History(db *gorm.DB) HistoryReport {
	if db == nil {
		return HistoryReport{Status: StatusSkipped}
	}

	model := history.RunRecord{}
	table := model.TableName()

	actual, err := database.GetTableColumns(db, table)
	if err != nil {
		return HistoryReport{Status: StatusError, Table: table, Error: err.Error()}
	}
	have := make(map[string]bool, len(actual))
	for _, col := range actual {
		have[col.Field] = true
	}

	var missing []string
	typ := reflect.TypeOf(model)
	for i := 0; i < typ.NumField(); i++ {
		column := gormColumn(typ.Field(i).Tag.Get("gorm"))
		if column == "" {
			continue
		}
		if !have[column] {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return HistoryReport{Status: StatusError, Table: table, MissingColumns: missing}
	}
	return HistoryReport{Status: StatusOK, Table: table}
}

// gormColumn extracts the column name from a gorm struct tag.
func gormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}
