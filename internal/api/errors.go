package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the normalized failure shape for every API call. Transport
// failures, non-2xx statuses, and malformed response bodies all end up
// here so callers can render Message uniformly.
type Error struct {
	// Status is the HTTP status code, or 0 when the request never
	// produced a response (network failure, timeout).
	Status int

	// Message is the server-supplied error message, or a generic
	// fallback when the server provided none.
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsClientError reports whether err is an API error with a 4xx status.
func IsClientError(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status >= 400 && apiErr.Status < 500
}

// IsServerError reports whether err is an API error with a 5xx status.
func IsServerError(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status >= 500
}

// IsNetworkFailure reports whether err represents a request that never
// reached or returned from the backend.
func IsNetworkFailure(err error) bool {
	return hasStatus(err, 0)
}

// MessageFor returns the display message for err. API errors surface
// their normalized message; anything else falls back to err.Error().
func MessageFor(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func hasStatus(err error, status int) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == status
}

// genericMessage picks a fallback message for a status class when the
// server response carried no Message field.
func genericMessage(status int) string {
	switch {
	case status == 0:
		return "could not reach the server"
	case status == http.StatusNotFound:
		return "not found"
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status >= 500:
		return "the server reported an internal error"
	default:
		return "the request was rejected"
	}
}
