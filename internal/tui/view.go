package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"projectman/internal/converters"
	"projectman/internal/models"
	"projectman/internal/tui/notifications"
	"projectman/internal/tui/state"
)

func (m Model) View() string {
	var body string
	switch m.view {
	case viewLogin:
		body = m.viewAuth("Sign In")
	case viewRegister:
		body = m.viewAuth("Create Account")
	case viewProjects:
		body = m.viewProjects()
	case viewDetail:
		body = m.viewDetail()
	case viewProjectForm:
		body = m.viewForm("New Project")
	case viewTaskForm:
		title := "New Task"
		if m.formState.EditingTaskID != 0 {
			title = "Edit Task"
		}
		body = m.viewForm(title)
	case viewConfirmDelete:
		body = m.viewConfirm()
	}

	if m.notifications.HasAny() {
		var banners []string
		for _, n := range m.notifications.All() {
			banners = append(banners, notifications.RenderInlineFromState(n))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, strings.Join(banners, "\n"), body)
	}
	return body
}

func (m Model) viewAuth(heading string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.mutating {
		b.WriteString("\n" + m.spinner.View() + " Working...")
	}
	b.WriteString(helpStyle.Render("\nctrl+r: switch sign in/register • esc: quit"))
	return b.String()
}

func (m Model) viewForm(heading string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	b.WriteString(helpStyle.Render("\nesc: cancel"))
	return b.String()
}

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Projects"))
	b.WriteString("\n")

	switch m.appState.ListPhase() {
	case state.Loading:
		b.WriteString(m.spinner.View() + " Loading projects...")
	case state.Errored:
		b.WriteString(errorStyle.Render(m.appState.ListError()))
		b.WriteString(helpStyle.Render("\nr: retry"))
	case state.Loaded:
		projects := m.appState.Projects()
		if len(projects) == 0 {
			b.WriteString(dimStyle.Render("No projects yet. Press n to create one."))
		} else {
			for i, p := range projects {
				b.WriteString(m.renderProjectRow(p, i == m.uiState.SelectedProject()))
				b.WriteString("\n")
			}
		}
		if m.mutating {
			b.WriteString("\n" + m.spinner.View() + " Working...")
		}
		b.WriteString(helpStyle.Render("\nenter: open • n: new • d: delete • r: refresh • L: logout • q: quit"))
	}
	return b.String()
}

func (m Model) renderProjectRow(p models.Project, selected bool) string {
	cursor := "  "
	style := lipgloss.NewStyle()
	if selected {
		cursor = "▸ "
		style = selectedStyle
	}
	row := style.Render(p.Title)
	if p.Description != "" {
		row += dimStyle.Render("  " + firstLine(p.Description))
	}
	return cursor + row
}

func (m Model) viewDetail() string {
	var b strings.Builder

	switch m.appState.DetailPhase() {
	case state.Loading:
		b.WriteString(m.spinner.View() + " Loading project...")
	case state.Errored:
		b.WriteString(errorStyle.Render(m.appState.DetailError()))
		b.WriteString(helpStyle.Render("\nr: retry • esc: back"))
	case state.Loaded:
		detail := m.appState.Detail()
		if detail == nil {
			return ""
		}
		b.WriteString(titleStyle.Render(detail.Title))
		b.WriteString("\n")
		if md := renderMarkdown(detail.Description, m.uiState.Width()); md != "" {
			b.WriteString(md)
			b.WriteString("\n\n")
		}

		if len(detail.Tasks) == 0 {
			b.WriteString(dimStyle.Render("No tasks yet. Press n to add one."))
		} else {
			now := time.Now()
			for i, t := range detail.Tasks {
				b.WriteString(m.renderTaskRow(t, now, i == m.uiState.SelectedTask()))
				b.WriteString("\n")
			}
		}
		if m.mutating {
			b.WriteString("\n" + m.spinner.View() + " Working...")
		}
		b.WriteString(helpStyle.Render("\nt: toggle • n: new • e: edit • d: delete • r: refresh • esc: back • q: quit"))
	}
	return b.String()
}

func (m Model) renderTaskRow(t models.Task, now time.Time, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	checkbox := "[ ]"
	if t.IsCompleted {
		checkbox = "[x]"
	}

	status := t.Status(now)
	title := t.Title
	switch status {
	case models.StatusCompleted:
		title = completedStyle.Render(title)
	case models.StatusOverdue:
		title = overdueStyle.Render(title)
	default:
		if selected {
			title = selectedStyle.Render(title)
		}
	}

	due := dimStyle.Render(fmt.Sprintf("due %s", converters.FormatDue(t.DueDate)))
	statusWord := dimStyle.Render(status.String())
	if status == models.StatusOverdue {
		statusWord = overdueStyle.Render(status.String())
	}

	return fmt.Sprintf("%s%s %s  %s  %s", cursor, checkbox, title, due, statusWord)
}

func (m Model) viewConfirm() string {
	noun := "project"
	if m.pendingDelete.kind == deleteTask {
		noun = "task"
	}
	prompt := fmt.Sprintf("Delete %s %q?\n\n%s", noun, m.pendingDelete.label,
		dimStyle.Render("y: delete • n: cancel"))
	return confirmStyle.Render(prompt)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
