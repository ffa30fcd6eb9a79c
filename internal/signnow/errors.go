package signnow

import "fmt"

// APIError is a non-2xx reply from the provider, carrying the status code and
// the provider-supplied error body verbatim.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("signnow api error: status %d: %s", e.Status, e.Body)
}
