package checks

import (
	"context"

	"app-reconciler/core/extract"
	"app-reconciler/core/netskope"
)

// InventoryReport is the outcome of the inventory endpoint probe.
type InventoryReport struct {
	Status string `json:"status"`
	// Applications is the number of applications extracted from the probed
	// page.
	Applications int `json:"applications"`
	// Error carries the failure, if any.
	Error string `json:"error,omitempty"`
}

// Inventory probes the inventory endpoint with a single-page fetch and runs
// the extractor over the answer. An endpoint that answers with a decodable
// page is healthy; pagination is not exercised.
func Inventory(ctx context.Context, client netskope.Client, keys extract.KeySet) InventoryReport {
	if client == nil {
		return InventoryReport{Status: StatusSkipped}
	}

	doc, err := client.FetchDocument(ctx)
	if err != nil {
		return InventoryReport{Status: StatusError, Error: err.Error()}
	}

	entities := extract.Extract([]any{doc}, keys, false)
	return InventoryReport{Status: StatusOK, Applications: len(entities)}
}
