package checks

// Statuses a check can report. A skipped check means its dependency is not
// configured, not that it failed.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)
