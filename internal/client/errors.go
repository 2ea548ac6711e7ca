package client

import (
	"errors"
	"fmt"
	"net/http"
)

// UnknownErrorMessage is the message carried by failures the client cannot
// explain further.
const UnknownErrorMessage = "Unknown error"

// ErrNotFound is returned by single-item lookups when neither the service
// nor the fallback dataset holds a matching record.
var ErrNotFound = errors.New("not found")

// APIError is a failed call against the Corus API. StatusCode is zero for
// transport-level failures that never produced a response.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("corus api error: %s", e.Message)
	}
	return fmt.Sprintf("corus api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 response or a fallback-scan miss.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

func errorMessage(msg string) string {
	if msg == "" {
		return UnknownErrorMessage
	}
	return msg
}
