package backend

import (
	"errors"
	"fmt"
)

// Failure taxonomy for backend calls. Every request error maps to exactly
// one of these so screens can react uniformly.
var (
	// ErrUnauthorized is returned when the backend rejects the bearer
	// token. The caller must clear the session and send the admin back to
	// the login page.
	ErrUnauthorized = errors.New("backend rejected credentials")

	// ErrTimeout is returned when a request exceeds its deadline. It is
	// kept distinct from ErrUnavailable so timeouts are reported as such.
	ErrTimeout = errors.New("backend request timed out")

	// ErrUnavailable is returned for any other transport-level failure
	// where no response was received.
	ErrUnavailable = errors.New("backend unavailable")
)

// APIError is a business failure reported by the backend: a non-2xx status
// with an optional human-readable message in the body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (status %d)", e.Status)
	}
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}
