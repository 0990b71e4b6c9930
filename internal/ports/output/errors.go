package output

import "fmt"

// APIError is a non-2xx backend response. Detail carries the backend's
// own message when the payload had one; call sites surface it verbatim
// and fall back to a generic message otherwise.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend: %d", e.Status)
}
