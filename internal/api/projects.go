package api

import (
	"context"
	"fmt"
	"net/http"

	"projectman/internal/models"
)

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListProjects fetches all projects for the current session. Order is
// whatever the backend returns; no client-side sort is imposed.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project and returns the server-assigned record.
func (c *Client) CreateProject(ctx context.Context, title, description string) (*models.Project, error) {
	var project models.Project
	req := createProjectRequest{Title: title, Description: description}
	if err := c.do(ctx, http.MethodPost, "/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject fetches one project with its nested tasks. A missing
// project surfaces as an *Error with status 404.
func (c *Client) GetProject(ctx context.Context, id int) (*models.ProjectDetail, error) {
	var detail models.ProjectDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteProject deletes a project and all of its tasks.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}
