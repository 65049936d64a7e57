package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"projectman/internal/api"
	authservice "projectman/internal/services/auth"
	projectservice "projectman/internal/services/project"
	taskservice "projectman/internal/services/task"
)

const requestTimeout = 15 * time.Second

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// displayError picks the banner text for err. API errors surface the
// server message; validation errors from the services read fine as-is.
func displayError(err error) string {
	return api.MessageFor(err)
}

func (m Model) fetchProjectsCmd(seq int) tea.Cmd {
	svc := m.app.ProjectService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		projects, err := svc.ListProjects(ctx)
		if err != nil {
			return fetchFailedMsg{seq: seq, err: err}
		}
		return projectsLoadedMsg{seq: seq, projects: projects}
	}
}

func (m Model) fetchDetailCmd(seq, projectID int) tea.Cmd {
	svc := m.app.ProjectService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		detail, err := svc.GetProjectDetail(ctx, projectID)
		if err != nil {
			return fetchFailedMsg{seq: seq, err: err}
		}
		return detailLoadedMsg{seq: seq, detail: detail}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	svc := m.app.AuthService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		if err := svc.Login(ctx, username, password); err != nil {
			return authFailedMsg{err: err}
		}
		return loggedInMsg{}
	}
}

func (m Model) registerCmd(req authservice.RegisterRequest) tea.Cmd {
	svc := m.app.AuthService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		if err := svc.Register(ctx, req); err != nil {
			return authFailedMsg{err: err}
		}
		return registeredMsg{}
	}
}

func (m Model) createProjectCmd(title, description string) tea.Cmd {
	svc := m.app.ProjectService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		req := projectservice.CreateProjectRequest{Title: title, Description: description}
		created, err := svc.CreateProject(ctx, req)
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{info: fmt.Sprintf("Created project %q", created.Title)}
	}
}

func (m Model) deleteProjectCmd(id int) tea.Cmd {
	svc := m.app.ProjectService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		if err := svc.DeleteProject(ctx, id); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{info: "Project deleted"}
	}
}

func (m Model) createTaskCmd(req taskservice.CreateTaskRequest) tea.Cmd {
	svc := m.app.TaskService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		created, err := svc.CreateTask(ctx, req)
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{info: fmt.Sprintf("Created task %q", created.Title)}
	}
}

func (m Model) updateTaskCmd(req taskservice.UpdateTaskRequest) tea.Cmd {
	svc := m.app.TaskService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		updated, err := svc.UpdateTask(ctx, req)
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{info: fmt.Sprintf("Updated task %q", updated.Title)}
	}
}

func (m Model) toggleTaskCmd(taskID int) tea.Cmd {
	svc := m.app.TaskService
	detail := m.appState.Detail()
	return func() tea.Msg {
		current := detail.FindTask(taskID)
		if current == nil {
			return mutationFailedMsg{err: fmt.Errorf("task %d is gone", taskID)}
		}
		ctx, cancel := requestContext()
		defer cancel()
		toggled, err := svc.ToggleCompletion(ctx, *current)
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		word := "pending"
		if toggled.IsCompleted {
			word = "completed"
		}
		return mutationDoneMsg{info: fmt.Sprintf("Task %q is now %s", toggled.Title, word)}
	}
}

func (m Model) deleteTaskCmd(taskID int) tea.Cmd {
	svc := m.app.TaskService
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		if err := svc.DeleteTask(ctx, taskID); err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{info: "Task deleted"}
	}
}
