package reconcile

import (
	"testing"

	"app-reconciler/core/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReconcile_DedupAndMissing tests deduplication across casing and the
// derived missing list and presence rows.
func TestReconcile_DedupAndMissing(t *testing.T) {
	result := Reconcile([]string{"Alpha", "Beta", "alpha"}, []string{"BETA"})

	assert.Equal(t, []string{"Alpha"}, result.Missing)

	require.Len(t, result.Presence, 2)
	assert.Equal(t, PresenceRow{Name: "alpha", InFile: true, InCloud: false}, result.Presence[0])
	assert.Equal(t, PresenceRow{Name: "beta", InFile: true, InCloud: true}, result.Presence[1])
}

// TestReconcile_MissingSortedByNormalizedName tests that the missing list
// orders by normalized form while keeping display spellings.
func TestReconcile_MissingSortedByNormalizedName(t *testing.T) {
	result := Reconcile([]string{"zeta", "ALPHA", "Mike"}, nil)

	assert.Equal(t, []string{"ALPHA", "Mike", "zeta"}, result.Missing)
}

// TestReconcile_EmptyCloud tests that an empty cloud set makes every file
// name missing.
func TestReconcile_EmptyCloud(t *testing.T) {
	result := Reconcile([]string{"One", "Two"}, []string{})

	assert.Equal(t, []string{"One", "Two"}, result.Missing)
	require.Len(t, result.Presence, 2)
	for _, row := range result.Presence {
		assert.True(t, row.InFile)
		assert.False(t, row.InCloud)
	}
}

// TestReconcile_EmptyFile tests that an empty file set yields no missing
// names.
func TestReconcile_EmptyFile(t *testing.T) {
	result := Reconcile(nil, []string{"Cloud Only"})

	assert.Empty(t, result.Missing)
	require.Len(t, result.Presence, 1)
	assert.Equal(t, PresenceRow{Name: "cloud only", InFile: false, InCloud: true}, result.Presence[0])
}

// TestReconcile_BothEmpty tests the fully empty edge.
func TestReconcile_BothEmpty(t *testing.T) {
	result := Reconcile(nil, nil)

	assert.Empty(t, result.Missing)
	assert.Empty(t, result.SideBySide)
	assert.Empty(t, result.Presence)
}

// TestReconcile_SideBySidePadding tests positional pairing with empty-string
// padding for the shorter list.
func TestReconcile_SideBySidePadding(t *testing.T) {
	result := Reconcile([]string{"B-File", "A-File", "C-File"}, []string{"A-Cloud"})

	require.Len(t, result.SideBySide, 3)
	assert.Equal(t, Pair{File: "A-File", Cloud: "A-Cloud"}, result.SideBySide[0])
	assert.Equal(t, Pair{File: "B-File", Cloud: ""}, result.SideBySide[1])
	assert.Equal(t, Pair{File: "C-File", Cloud: ""}, result.SideBySide[2])
}

// TestReconcile_SideBySideCloudLonger tests padding on the file side.
func TestReconcile_SideBySideCloudLonger(t *testing.T) {
	result := Reconcile([]string{"Only"}, []string{"x", "y", "z"})

	require.Len(t, result.SideBySide, 3)
	assert.Equal(t, Pair{File: "Only", Cloud: "x"}, result.SideBySide[0])
	assert.Equal(t, Pair{File: "", Cloud: "y"}, result.SideBySide[1])
	assert.Equal(t, Pair{File: "", Cloud: "z"}, result.SideBySide[2])
}

// TestReconcile_PresenceCoversUnion tests that presence rows cover exactly
// the union of both normalized sets.
func TestReconcile_PresenceCoversUnion(t *testing.T) {
	fileNames := []string{"A", "B", "Shared", "a"}
	cloudNames := []string{"shared", "C", "D"}

	result := Reconcile(fileNames, cloudNames)

	union := make(map[string]struct{})
	for _, n := range fileNames {
		union[extract.Normalize(n)] = struct{}{}
	}
	for _, n := range cloudNames {
		union[extract.Normalize(n)] = struct{}{}
	}
	require.Len(t, result.Presence, len(union))

	for _, row := range result.Presence {
		_, ok := union[row.Name]
		assert.True(t, ok, "presence row %q not in union", row.Name)
		assert.True(t, row.InFile || row.InCloud)
	}
}

// TestReconcile_Deterministic tests that shuffled input order does not
// change the result.
func TestReconcile_Deterministic(t *testing.T) {
	a := Reconcile([]string{"x", "y", "z"}, []string{"y", "w"})
	b := Reconcile([]string{"z", "y", "x"}, []string{"w", "y"})

	assert.Equal(t, a.Missing, b.Missing)
	assert.Equal(t, a.Presence, b.Presence)
	assert.Equal(t, a.SideBySide, b.SideBySide)
}

// TestSummarize tests the aggregate counts, including the reverse
// difference.
func TestSummarize(t *testing.T) {
	result := Reconcile([]string{"A", "B", "C"}, []string{"b", "D", "E"})

	summary := result.Summarize()
	assert.Equal(t, 3, summary.FileNames)
	assert.Equal(t, 3, summary.CloudNames)
	assert.Equal(t, 2, summary.Missing)   // A, C
	assert.Equal(t, 2, summary.CloudOnly) // D, E
	assert.Equal(t, 5, summary.Union)
}
