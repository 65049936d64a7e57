package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"projectman/internal/api"
	"projectman/internal/models"
)

// API is the slice of the backend client this service uses.
type API interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, title, description string) (*models.Project, error)
	GetProject(ctx context.Context, id int) (*models.ProjectDetail, error)
	DeleteProject(ctx context.Context, id int) error
}

// SessionClearer destroys the stored session when the backend rejects
// the token.
type SessionClearer interface {
	Clear() error
}

// Service defines all project-related operations.
//
// Mutations return once the backend confirms them; the visible
// list/detail snapshot is only replaced by an explicit follow-up
// ListProjects or GetProjectDetail call. Nothing is patched locally.
type Service interface {
	// Read operations
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProjectDetail(ctx context.Context, id int) (*models.ProjectDetail, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

// CreateProjectRequest encapsulates all data needed to create a project
type CreateProjectRequest struct {
	Title       string
	Description string
}

// service implements Service interface
type service struct {
	client   API
	sessions SessionClearer
}

// NewService creates a new project service
func NewService(client API, sessions SessionClearer) Service {
	return &service{
		client:   client,
		sessions: sessions,
	}
}

// ListProjects fetches the full project list snapshot
func (s *service) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.client.ListProjects(ctx)
	if err != nil {
		return nil, s.normalize(err, "list projects")
	}
	return projects, nil
}

// GetProjectDetail fetches one project with its nested tasks
func (s *service) GetProjectDetail(ctx context.Context, id int) (*models.ProjectDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}

	detail, err := s.client.GetProject(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
		}
		return nil, s.normalize(err, "get project detail")
	}
	return detail, nil
}

// CreateProject handles project creation with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	project, err := s.client.CreateProject(ctx, title, req.Description)
	if err != nil {
		return nil, s.normalize(err, "create project")
	}
	return project, nil
}

// DeleteProject handles project deletion. Confirmation is the
// caller's responsibility and must happen before this is invoked.
func (s *service) DeleteProject(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidProjectID
	}

	if err := s.client.DeleteProject(ctx, id); err != nil {
		return s.normalize(err, "delete project")
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
