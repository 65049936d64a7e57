package models

import "time"

// Project is a top-level work container owned by the backend.
// The client only ever holds a read-only snapshot of it from the
// last successful fetch.
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectDetail is a project together with its tasks, as returned by
// GET /projects/{id}. The task order is whatever the backend returns.
type ProjectDetail struct {
	Project
	Tasks []Task `json:"tasks"`
}

// FindTask returns the task with the given ID from the detail snapshot,
// or nil if it is not present.
func (d *ProjectDetail) FindTask(taskID int) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == taskID {
			return &d.Tasks[i]
		}
	}
	return nil
}
