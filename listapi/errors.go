package listapi

import (
	"errors"
	"fmt"
)

// ErrUnexpectedShape is returned when a response lacks data.attributes.
var ErrUnexpectedShape = errors.New("response is missing data.attributes")

// FetchError is returned by GetList. Err is the underlying cause: the
// transport error, a *StatusError, or a decoding error.
type FetchError struct {
	ListID string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to get list %q: %v", e.ListID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-200 response.
type StatusError struct {
	StatusCode int
	Status     string

	// Body is the response body, usually a JSON:API errors document.
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code was: %s", e.Status)
}
