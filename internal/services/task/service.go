package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"projectman/internal/api"
	"projectman/internal/models"
)

// maxTitleLength caps task titles client-side.
const maxTitleLength = 255

// API is the slice of the backend client this service uses.
type API interface {
	CreateTask(ctx context.Context, projectID int, title string, dueDate time.Time) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID int, title string, dueDate time.Time, isCompleted bool) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// SessionClearer destroys the stored session when the backend rejects
// the token.
type SessionClearer interface {
	Clear() error
}

// Service defines all task-related operations. Task mutations always
// happen in the context of a parent project; after any of them the
// caller re-fetches the project detail for a fresh snapshot.
type Service interface {
	// CreateTask creates a task under a project. A zero due date
	// defaults to the submission instant. New tasks start incomplete.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)

	// UpdateTask replaces all three mutable fields of a task.
	// Callers supply every field, sourcing unchanged ones from the
	// last known task state.
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)

	// ToggleCompletion flips a task's completion flag, resending its
	// current title and due date unchanged.
	ToggleCompletion(ctx context.Context, t models.Task) (*models.Task, error)

	// DeleteTask deletes a task. Confirmation happens before this
	// is invoked.
	DeleteTask(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	ProjectID int
	Title     string
	DueDate   time.Time // zero means "due now"
}

// UpdateTaskRequest encapsulates a full replacement of a task's
// mutable fields. This is not a patch: all three are always sent.
type UpdateTaskRequest struct {
	TaskID      int
	Title       string
	DueDate     time.Time
	IsCompleted bool
}

// service implements Service interface
type service struct {
	client   API
	sessions SessionClearer
	now      func() time.Time
}

// NewService creates a new task service
func NewService(client API, sessions SessionClearer) Service {
	return &service{
		client:   client,
		sessions: sessions,
		now:      time.Now,
	}
}

// CreateTask handles task creation with validation and defaulting
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if req.ProjectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = s.now()
	}

	created, err := s.client.CreateTask(ctx, req.ProjectID, strings.TrimSpace(req.Title), dueDate)
	if err != nil {
		return nil, s.normalize(err, "create task")
	}
	return created, nil
}

// UpdateTask handles the full-replacement update
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateTask(ctx, req.TaskID, strings.TrimSpace(req.Title), req.DueDate, req.IsCompleted)
	if err != nil {
		return nil, s.normalize(err, "update task")
	}
	return updated, nil
}

// ToggleCompletion is a convenience wrapper over UpdateTask
func (s *service) ToggleCompletion(ctx context.Context, t models.Task) (*models.Task, error) {
	return s.UpdateTask(ctx, UpdateTaskRequest{
		TaskID:      t.ID,
		Title:       t.Title,
		DueDate:     t.DueDate,
		IsCompleted: !t.IsCompleted,
	})
}

// DeleteTask handles task deletion
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	if err := s.client.DeleteTask(ctx, taskID); err != nil {
		return s.normalize(err, "delete task")
	}
	return nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	if len(trimmed) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// normalize applies the uniform unauthorized policy: a rejected token
// clears the stored session so every surface re-prompts for login.
func (s *service) normalize(err error, op string) error {
	if api.IsUnauthorized(err) {
		if clearErr := s.sessions.Clear(); clearErr != nil {
			slog.Error("failed to clear session after auth failure", "error", clearErr)
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
