package history

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// defaultRecentLimit caps Recent queries that pass no explicit limit.
const defaultRecentLimit = 20

// Recorder reads and writes the run-history ledger.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder creates a recorder over db, migrating the ledger table when
// it does not exist yet.
func NewRecorder(db *gorm.DB) (*Recorder, error) {
	if db == nil {
		return nil, fmt.Errorf("history: database connection is nil")
	}
	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, fmt.Errorf("history: migrate ledger: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Record appends one run to the ledger.
func (r *Recorder) Record(ctx context.Context, rec *RunRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("history: record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first. A non-positive limit
// falls back to the default.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	var records []RunRecord
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	return records, nil
}
