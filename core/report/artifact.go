package report

import (
	"time"

	"app-reconciler/core/reconcile"
)

// Content types stored alongside published artifacts.
const (
	ContentTypeText = "text/plain"
	ContentTypeCSV  = "text/csv"
)

// Artifact is one rendered output ready for publishing.
type Artifact struct {
	// Name is the object or file name, run stamp included.
	Name string `json:"name"`

	// ContentType is the MIME type stored with the content.
	ContentType string `json:"content_type"`

	// Body is the rendered content.
	Body []byte `json:"-"`
}

// RunStamp formats the per-run timestamp token used in artifact names.
// One stamp is generated per run and shared by all of its artifacts.
func RunStamp(t time.Time) string {
	return t.Format("20060102-150405")
}

// EntityArtifact renders the application/hosts table as the sync artifact.
func EntityArtifact(t Table, stamp string) Artifact {
	return Artifact{
		Name:        "apps_and_hosts_" + stamp + ".csv",
		ContentType: ContentTypeCSV,
		Body:        []byte(Delimited(t)),
	}
}

// CompareArtifacts renders the three comparison artifacts of a run: the
// missing-names text list, the side-by-side CSV and the presence-matrix
// CSV.
func CompareArtifacts(result *reconcile.Result, stamp string) []Artifact {
	return []Artifact{
		{
			Name:        "missing_apps_" + stamp + ".txt",
			ContentType: ContentTypeText,
			Body:        []byte(MissingList(result)),
		},
		{
			Name:        "side_by_side_" + stamp + ".csv",
			ContentType: ContentTypeCSV,
			Body:        []byte(Delimited(SideBySideTable(result))),
		},
		{
			Name:        "presence_matrix_" + stamp + ".csv",
			ContentType: ContentTypeCSV,
			Body:        []byte(Delimited(PresenceTable(result))),
		},
	}
}
