package reconcile

// Pair is one side-by-side row: the file-sourced and cloud-sourced names
// occupying the same sorted position. Either side is empty when its list is
// the shorter one.
type Pair struct {
	// File is the spreadsheet-sourced name at this position.
	File string `json:"file"`

	// Cloud is the inventory-sourced name at this position.
	Cloud string `json:"cloud"`
}

// PresenceRow reports the membership of one normalized name in each source.
type PresenceRow struct {
	// Name is the normalized form; original casing is not recoverable from
	// this report.
	Name string `json:"name"`

	// InFile indicates the name appears in the spreadsheet-sourced set.
	InFile bool `json:"in_file"`

	// InCloud indicates the name appears in the inventory-sourced set.
	InCloud bool `json:"in_cloud"`
}

// Result is the output of one reconciliation run. It is derived data,
// recomputed per run and never persisted by the engine itself.
type Result struct {
	// Missing lists the file names absent from the cloud inventory, display
	// spellings sorted by normalized name.
	Missing []string `json:"missing"`

	// SideBySide pairs the two sorted display lists positionally.
	SideBySide []Pair `json:"side_by_side"`

	// Presence covers the union of both normalized sets.
	Presence []PresenceRow `json:"presence"`
}

// Summary provides aggregate counts for a result.
type Summary struct {
	// FileNames is the number of distinct file-sourced names.
	FileNames int `json:"file_names"`

	// CloudNames is the number of distinct cloud-sourced names.
	CloudNames int `json:"cloud_names"`

	// Missing counts file names absent from the cloud inventory.
	Missing int `json:"missing"`

	// CloudOnly counts cloud names absent from the file.
	CloudOnly int `json:"cloud_only"`

	// Union is the number of distinct normalized names across both sources.
	Union int `json:"union"`
}

// Summarize computes the aggregate counts for the result.
func (r *Result) Summarize() Summary {
	s := Summary{
		Missing: len(r.Missing),
		Union:   len(r.Presence),
	}
	for _, row := range r.Presence {
		if row.InFile {
			s.FileNames++
		}
		if row.InCloud {
			s.CloudNames++
		}
		if row.InCloud && !row.InFile {
			s.CloudOnly++
		}
	}
	return s
}
