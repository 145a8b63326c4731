package reconcile

import (
	"sort"

	"app-reconciler/core/extract"
)

// Reconcile compares the spreadsheet-sourced names against the cloud
// inventory names and derives the three report shapes. Empty inputs are
// valid on either side: an empty cloud set makes every file name missing,
// an empty file set makes the missing list empty.
func Reconcile(fileNames, cloudNames []string) *Result {
	file := NewNameSet(fileNames)
	cloud := NewNameSet(cloudNames)

	result := &Result{
		Missing:    []string{},
		SideBySide: []Pair{},
		Presence:   []PresenceRow{},
	}

	// Missing: file names whose normalized form the cloud set lacks.
	for _, name := range file.Display() {
		if !cloud.Contains(extract.Normalize(name)) {
			result.Missing = append(result.Missing, name)
		}
	}
	sortByNormalized(result.Missing)

	// Side by side: both sorted display lists paired by position, the
	// shorter list padded with empty strings.
	fileSorted := file.SortedDisplay()
	cloudSorted := cloud.SortedDisplay()
	rows := len(fileSorted)
	if len(cloudSorted) > rows {
		rows = len(cloudSorted)
	}
	for i := 0; i < rows; i++ {
		var pair Pair
		if i < len(fileSorted) {
			pair.File = fileSorted[i]
		}
		if i < len(cloudSorted) {
			pair.Cloud = cloudSorted[i]
		}
		result.SideBySide = append(result.SideBySide, pair)
	}

	// Presence: sorted union of both normalized sets with membership flags.
	union := make(map[string]struct{}, file.Len()+cloud.Len())
	for key := range file.members {
		union[key] = struct{}{}
	}
	for key := range cloud.members {
		union[key] = struct{}{}
	}
	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		result.Presence = append(result.Presence, PresenceRow{
			Name:    key,
			InFile:  file.Contains(key),
			InCloud: cloud.Contains(key),
		})
	}

	return result
}
