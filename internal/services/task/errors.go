package task

import "errors"

var (
	// ErrInvalidTaskID indicates a non-positive task ID
	ErrInvalidTaskID = errors.New("invalid task ID")

	// ErrInvalidProjectID indicates a non-positive project ID
	ErrInvalidProjectID = errors.New("invalid project ID")

	// ErrEmptyTitle indicates a missing task title
	ErrEmptyTitle = errors.New("task title is required")

	// ErrTitleTooLong indicates a title over the maximum length
	ErrTitleTooLong = errors.New("task title must be 255 characters or less")
)
