package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"projectman/internal/models"
)

type taskPayload struct {
	Title       string    `json:"title"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}

// CreateTask creates a task under the given project. New tasks always
// start incomplete.
func (c *Client) CreateTask(ctx context.Context, projectID int, title string, dueDate time.Time) (*models.Task, error) {
	var task models.Task
	payload := taskPayload{Title: title, DueDate: dueDate, IsCompleted: false}
	path := fmt.Sprintf("/projects/%d/tasks", projectID)
	if err := c.do(ctx, http.MethodPost, path, payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces all three mutable fields of a task. This is a
// full replacement, not a patch: callers must supply every field,
// sourcing unchanged ones from the last known task state.
func (c *Client) UpdateTask(ctx context.Context, taskID int, title string, dueDate time.Time, isCompleted bool) (*models.Task, error) {
	var task models.Task
	payload := taskPayload{Title: title, DueDate: dueDate, IsCompleted: isCompleted}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", taskID), payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", taskID), nil, nil)
}
