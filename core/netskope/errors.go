package netskope

import "fmt"

// maxErrorBody bounds how much of a failed response body a TransportError
// carries.
const maxErrorBody = 4096

// TransportError reports a non-2xx answer from the inventory endpoint. The
// response body is kept (truncated) so the operator can diagnose the
// failure.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("netskope: api error %d: %s", e.StatusCode, e.Body)
}
