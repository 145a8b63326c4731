package checks

import (
	"testing"

	"app-reconciler/core/database"
	"app-reconciler/core/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func sqliteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestHistory_Skipped(t *testing.T) {
	report := History(nil)
	assert.Equal(t, StatusSkipped, report.Status)
}

func TestHistory_OK(t *testing.T) {
	db := sqliteDB(t)
	require.NoError(t, db.AutoMigrate(&history.RunRecord{}))

	report := History(db)
	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, "run_records", report.Table)
	assert.Empty(t, report.MissingColumns)
}

func TestHistory_Unmigrated(t *testing.T) {
	db := sqliteDB(t)

	// No migration ran; sqlite answers an empty column list, so every model
	// column reports missing.
	report := History(db)
	assert.Equal(t, StatusError, report.Status)
	assert.Contains(t, report.MissingColumns, "stamp")
	assert.Contains(t, report.MissingColumns, "triggered_by")
}

func TestHistory_InspectError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SHOW COLUMNS FROM `run_records`").WillReturnError(assert.AnError)

	report := History(gormDB)
	assert.Equal(t, StatusError, report.Status)
	assert.NotEmpty(t, report.Error)
}
