package artifact

import "fmt"

// StorageError reports a failed artifact write or prune. It aborts the
// remaining writes of the run.
type StorageError struct {
	// Op is the operation that failed ("write" or "prune").
	Op string

	// Name is the artifact name involved, when one applies.
	Name string

	// Err is the underlying storage failure.
	Err error
}

func (e *StorageError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("artifact: %s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("artifact: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
