package auth

import "errors"

// Client-side validation errors, raised before any network call.
var (
	// ErrEmptyUsername indicates a missing username
	ErrEmptyUsername = errors.New("username is required")

	// ErrEmptyPassword indicates a missing password
	ErrEmptyPassword = errors.New("password is required")

	// ErrPasswordTooShort indicates a password under the minimum length
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrPasswordMismatch indicates the confirmation did not match
	ErrPasswordMismatch = errors.New("passwords do not match")
)
