package models

import "time"

// Task is a unit of work belonging to exactly one project.
// Tasks always arrive nested in a ProjectDetail; the client never
// fetches a task on its own.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}

// TaskStatus is the derived display state of a task. It is computed
// at render time and never stored.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusOverdue
	StatusCompleted
)

// String returns the display label for the status.
func (s TaskStatus) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusOverdue:
		return "Overdue"
	default:
		return "Pending"
	}
}

// IsOverdue reports whether the task is incomplete with a due date
// strictly before now.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.IsCompleted && t.DueDate.Before(now)
}

// Status derives the display status. Completed takes precedence over
// Overdue regardless of the due date.
func (t Task) Status(now time.Time) TaskStatus {
	switch {
	case t.IsCompleted:
		return StatusCompleted
	case t.IsOverdue(now):
		return StatusOverdue
	default:
		return StatusPending
	}
}
