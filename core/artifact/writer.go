package artifact

import "context"

// Ref identifies a published artifact.
type Ref struct {
	// Location is where the artifact ended up (bucket/key or file path).
	Location string `json:"location"`

	// Size is the stored content length in bytes.
	Size int64 `json:"size"`
}

// Writer is the sink a run publishes its artifacts to.
type Writer interface {
	// Write persists one artifact and returns a reference to it. Failures
	// surface as *StorageError.
	Write(ctx context.Context, name string, content []byte, contentType string) (*Ref, error)

	// Prune removes all but the keep most recent artifacts under the
	// writer's destination, returning how many were removed. Zero or
	// negative keep is a no-op.
	Prune(ctx context.Context, keep int) (int, error)
}
