package history

import "time"

// Run triggers recorded in the ledger.
const (
	TriggerCLI = "cli"
	TriggerAPI = "api"
)

// RunRecord is one row of the run-history ledger, the summary of a single
// comparison run.
type RunRecord struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	// Stamp is the run timestamp token shared by the run's artifacts.
	Stamp string `gorm:"column:stamp;type:varchar(32);index" json:"stamp"`

	// TriggeredBy records what started the run (TriggerCLI or TriggerAPI).
	TriggeredBy string `gorm:"column:triggered_by;type:varchar(16)" json:"triggered_by"`

	// FileCount is the number of distinct names read from the spreadsheet.
	FileCount int `gorm:"column:file_count" json:"file_count"`

	// CloudCount is the number of distinct names extracted from the
	// inventory.
	CloudCount int `gorm:"column:cloud_count" json:"cloud_count"`

	// MissingCount is the number of file names absent from the cloud.
	MissingCount int `gorm:"column:missing_count" json:"missing_count"`

	// CloudOnlyCount is the reverse difference: cloud names absent from
	// the file.
	CloudOnlyCount int `gorm:"column:cloud_only_count" json:"cloud_only_count"`

	// UnionCount is the number of distinct names across both sources.
	UnionCount int `gorm:"column:union_count" json:"union_count"`

	// DurationMS is the wall-clock duration of the run in milliseconds.
	DurationMS int64 `gorm:"column:duration_ms" json:"duration_ms"`

	// Artifacts lists the published artifact names, comma separated.
	Artifacts string `gorm:"column:artifacts;type:varchar(512)" json:"artifacts"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the ledger table name.
func (RunRecord) TableName() string {
	return "run_records"
}
