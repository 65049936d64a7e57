package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTaskStatusPrecedence(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name string
		task Task
		want TaskStatus
	}{
		{
			name: "incomplete with future due date is pending",
			task: Task{DueDate: future, IsCompleted: false},
			want: StatusPending,
		},
		{
			name: "incomplete with past due date is overdue",
			task: Task{DueDate: past, IsCompleted: false},
			want: StatusOverdue,
		},
		{
			name: "completed with past due date is completed",
			task: Task{DueDate: past, IsCompleted: true},
			want: StatusCompleted,
		},
		{
			name: "completed with future due date is completed",
			task: Task{DueDate: future, IsCompleted: true},
			want: StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Status(now); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskIsOverdueBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Due exactly now is not overdue; strictly before is required.
	task := Task{DueDate: now}
	if task.IsOverdue(now) {
		t.Error("task due exactly now should not be overdue")
	}

	task.DueDate = now.Add(-time.Second)
	if !task.IsOverdue(now) {
		t.Error("task due one second ago should be overdue")
	}
}

func TestTaskStatusString(t *testing.T) {
	if got := StatusCompleted.String(); got != "Completed" {
		t.Errorf("StatusCompleted.String() = %q", got)
	}
	if got := StatusOverdue.String(); got != "Overdue" {
		t.Errorf("StatusOverdue.String() = %q", got)
	}
	if got := StatusPending.String(); got != "Pending" {
		t.Errorf("StatusPending.String() = %q", got)
	}
}

func TestProjectDetailFindTask(t *testing.T) {
	detail := &ProjectDetail{
		Project: Project{ID: 1, Title: "Test"},
		Tasks: []Task{
			{ID: 10, Title: "first"},
			{ID: 20, Title: "second"},
		},
	}

	if got := detail.FindTask(20); got == nil || got.Title != "second" {
		t.Errorf("FindTask(20) = %+v, want task 'second'", got)
	}
	if got := detail.FindTask(99); got != nil {
		t.Errorf("FindTask(99) = %+v, want nil", got)
	}
}

func TestProjectDetailUnmarshal(t *testing.T) {
	// Wire shape from GET /projects/{id}: project fields flattened
	// alongside the nested task array.
	payload := `{
		"id": 3,
		"title": "Website",
		"description": "Launch plan",
		"createdAt": "2025-01-02T10:00:00Z",
		"tasks": [
			{"id": 7, "title": "Write copy", "dueDate": "2025-02-01T00:00:00Z", "isCompleted": false}
		]
	}`

	var detail ProjectDetail
	if err := json.Unmarshal([]byte(payload), &detail); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if detail.ID != 3 || detail.Title != "Website" {
		t.Errorf("unexpected project fields: %+v", detail.Project)
	}
	if len(detail.Tasks) != 1 || detail.Tasks[0].ID != 7 {
		t.Errorf("unexpected tasks: %+v", detail.Tasks)
	}
}
