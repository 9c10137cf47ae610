package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a caller-facing
// message. Delivery layers build these in mapError; pkg/response
// unwraps them when writing the envelope.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
