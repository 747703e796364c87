package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotFound matches a [StatusError] carrying 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork matches every [NetworkError] (DNS, refused connections,
	// timeouts, cancelled contexts).
	ErrNetwork = errors.New("network error")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

// Error returns the status code together with its standard text.
func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports ErrNotFound for 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// NetworkError wraps a transport failure. Its message is the wrapped error's
// own message so that it can be shown to the user verbatim.
type NetworkError struct{ Err error }

// Error returns the error message of the wrapped error.
func (e *NetworkError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *NetworkError) Unwrap() error { return e.Err }

// Is reports ErrNetwork for every NetworkError.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// NewHTTPClient creates an HTTP client. A zero timeout means requests wait
// until the response arrives or the request context is cancelled.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// WithQuery merges params into the query string of raw. Existing keys named
// in params are replaced; other existing keys are preserved.
func WithQuery(raw string, params url.Values) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range params {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
