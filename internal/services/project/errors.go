package project

import "errors"

var (
	// ErrInvalidProjectID indicates a non-positive project ID
	ErrInvalidProjectID = errors.New("invalid project ID")

	// ErrEmptyTitle indicates a missing project title
	ErrEmptyTitle = errors.New("project title is required")

	// ErrProjectNotFound indicates the backend has no such project.
	// Distinguished from other failures so callers can show a
	// dedicated not-found message.
	ErrProjectNotFound = errors.New("project not found")
)
