package checks

import (
	"app-reconciler/core/reconcile"
	"app-reconciler/core/sheet"
)

// SheetReport is the outcome of the spreadsheet probe.
type SheetReport struct {
	Status string `json:"status"`
	// Names is the number of distinct application names the configured
	// column yields.
	Names int `json:"names"`
	// Error carries the failure, if any.
	Error string `json:"error,omitempty"`
}

// Sheet resolves the configured worksheet and column and counts the
// distinct names a comparison would use.
func Sheet(cfg sheet.Config) SheetReport {
	if cfg.Path == "" {
		return SheetReport{Status: StatusSkipped}
	}

	names, err := sheet.ReadColumn(cfg.Path, cfg.Sheet, cfg.Column, cfg.HasHeader)
	if err != nil {
		return SheetReport{Status: StatusError, Error: err.Error()}
	}

	return SheetReport{Status: StatusOK, Names: reconcile.NewNameSet(names).Len()}
}
