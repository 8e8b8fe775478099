package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, http.StatusText(e.Status))
}

// IsAuthError reports whether err is a 401/403 from the server, meaning the
// cached session is no longer valid and the user must sign in again.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}
