// Package apierr converts failed API calls into typed errors and
// user-displayable messages. Network failures, HTTP error statuses, and
// malformed response bodies all funnel through the same normalization.
package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error represents a non-2xx response from the ticketing API.
// The backend's failure body carries a "message" and, for validation
// failures, a field-keyed "errors" map.
type Error struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int `json:"-"`
	// Message is the backend's human-readable error message.
	Message string `json:"message"`
	// Errors holds per-field validation messages on 422 responses.
	Errors map[string][]string `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// FromResponse builds an Error from a non-2xx response. The body is
// decoded tolerantly; a malformed payload still yields a usable error
// carrying the status code. Does not close the response body.
func FromResponse(resp *http.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode}
	if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
		apiErr.Message = ""
	}
	return apiErr
}

// Fallback messages for failures the backend gives no message for.
const (
	msgNetwork      = "Unable to reach the server. Please check your connection and try again."
	msgUnauthorized = "Your session has expired. Please log in again."
	msgForbidden    = "You do not have permission to perform this action."
	msgNotFound     = "The requested resource was not found."
	msgServer       = "Something went wrong on the server. Please try again later."
	msgUnknown      = "An unexpected error occurred. Please try again."
)

// Message normalizes any failure into a user-displayable string. This
// is the single path from a raw error to what the UI shows.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		// Prefer the first field validation message; it is the most
		// actionable detail the backend provides.
		for _, msgs := range apiErr.Errors {
			if len(msgs) > 0 {
				return msgs[0]
			}
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized:
			return msgUnauthorized
		case apiErr.StatusCode == http.StatusForbidden:
			return msgForbidden
		case apiErr.StatusCode == http.StatusNotFound:
			return msgNotFound
		case apiErr.StatusCode >= http.StatusInternalServerError:
			return msgServer
		default:
			return msgUnknown
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return msgNetwork
	}

	// Transport-level failures (DNS, refused connection, timeout) have
	// no HTTP status to classify by. *url.Error satisfies net.Error.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return msgNetwork
	}

	return msgUnknown
}

// IsStatus reports whether err is an API error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
