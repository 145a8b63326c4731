package checks

import (
	"os"
	"path/filepath"
	"testing"

	"app-reconciler/core/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "apps.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSheet_Skipped(t *testing.T) {
	report := Sheet(sheet.Config{})
	assert.Equal(t, StatusSkipped, report.Status)
}

func TestSheet_OK(t *testing.T) {
	path := writeSheet(t, "Application Name\nAlpha\nBeta\nalpha\n")

	report := Sheet(sheet.Config{Path: path, Column: "Application Name", HasHeader: true})
	assert.Equal(t, StatusOK, report.Status)
	// Distinct names; "alpha" collapses into "Alpha".
	assert.Equal(t, 2, report.Names)
}

func TestSheet_ColumnNotFound(t *testing.T) {
	path := writeSheet(t, "Application Name\nAlpha\n")

	report := Sheet(sheet.Config{Path: path, Column: "No Such Column", HasHeader: true})
	assert.Equal(t, StatusError, report.Status)
	assert.Contains(t, report.Error, "No Such Column")
}

func TestSheet_MissingFile(t *testing.T) {
	report := Sheet(sheet.Config{Path: filepath.Join(t.TempDir(), "absent.csv"), Column: "1"})
	assert.Equal(t, StatusError, report.Status)
	assert.NotEmpty(t, report.Error)
}
