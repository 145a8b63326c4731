package sheet

import (
	"fmt"
	"strings"
)

// NotFoundError reports a worksheet or column absent from the source.
// Available lists what the source actually offers, to aid correction.
type NotFoundError struct {
	// Kind is "sheet" or "column".
	Kind string

	// Requested is the selector that failed to resolve.
	Requested string

	// Available enumerates the names the source does have.
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("sheet: %s %q not found (source has none)", e.Kind, e.Requested)
	}
	return fmt.Sprintf("sheet: %s %q not found; available: %s", e.Kind, e.Requested, strings.Join(e.Available, ", "))
}
