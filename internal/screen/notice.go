package screen

import (
	"errors"

	"trade_admin/internal/backend"
)

// Fallback banner texts for failures without a usable server message.
const (
	noticeTimeout     = "The request timed out. Please try again."
	noticeUnavailable = "Could not reach the server."
	noticeFallback    = "An error occurred"
)

// Notice maps a backend failure onto the banner text shown to the admin.
// Business errors surface the backend's own message when it sent one;
// transport failures get fixed texts so they are distinguishable from them.
func Notice(err error) string {
	switch {
	case errors.Is(err, backend.ErrTimeout):
		return noticeTimeout
	case errors.Is(err, backend.ErrUnavailable):
		return noticeUnavailable
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return noticeFallback
}

func isUnauthorized(err error) bool {
	return errors.Is(err, backend.ErrUnauthorized)
}
