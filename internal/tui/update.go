package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"projectman/internal/api"
	"projectman/internal/converters"
	authservice "projectman/internal/services/auth"
	taskservice "projectman/internal/services/task"
	"projectman/internal/tui/state"
)

func (m Model) Init() tea.Cmd {
	if m.view == viewProjects {
		m.appState.BeginListFetch()
		return tea.Batch(m.spinner.Tick, m.fetchProjectsCmd(m.fetchSeq))
	}
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWindowSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.loadingActive() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case projectsLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.appState.SetProjects(msg.projects)
		m.uiState.ClampProject(len(msg.projects))
		return m, nil

	case detailLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.appState.SetDetail(msg.detail)
		m.uiState.ClampTask(len(msg.detail.Tasks))
		return m, nil

	case fetchFailedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if api.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		message := displayError(msg.err)
		if m.view == viewDetail {
			m.appState.FailDetail(message)
		} else {
			m.appState.FailList(message)
		}
		return m, nil

	case mutationDoneMsg:
		m.mutating = false
		m.notifications.Clear()
		m.notifications.Add(state.LevelInfo, msg.info)
		if m.view == viewDetail {
			return m, m.startDetailFetch(m.activeProjectID)
		}
		return m, m.startListFetch()

	case mutationFailedMsg:
		m.mutating = false
		if api.IsUnauthorized(msg.err) {
			return m.sessionExpired()
		}
		m.notifications.Clear()
		m.notifications.Add(state.LevelError, displayError(msg.err))
		return m, nil

	case loggedInMsg:
		m.mutating = false
		m.notifications.Clear()
		m.form = nil
		m.view = viewProjects
		return m, m.startListFetch()

	case registeredMsg:
		m.mutating = false
		m.notifications.Clear()
		m.notifications.Add(state.LevelInfo, "Account created, sign in to continue")
		m.openLoginForm()
		return m, m.form.Init()

	case authFailedMsg:
		m.mutating = false
		m.notifications.Clear()
		m.notifications.Add(state.LevelError, displayError(msg.err))
		if m.view == viewRegister {
			m.openRegisterForm()
		} else {
			m.openLoginForm()
		}
		return m, m.form.Init()
	}

	switch m.view {
	case viewLogin, viewRegister:
		return m.updateAuthForm(msg)
	case viewProjects:
		return m.updateProjects(msg)
	case viewProjectForm, viewTaskForm:
		return m.updateEntityForm(msg)
	case viewDetail:
		return m.updateDetail(msg)
	case viewConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

// sessionExpired sends the user back to the login form. The service
// layer already discarded the stored token.
func (m Model) sessionExpired() (tea.Model, tea.Cmd) {
	m.mutating = false
	m.notifications.Clear()
	m.notifications.Add(state.LevelError, "Your session expired, sign in again")
	m.openLoginForm()
	return m, m.form.Init()
}

func (m *Model) startListFetch() tea.Cmd {
	m.fetchSeq++
	m.appState.BeginListFetch()
	return tea.Batch(m.spinner.Tick, m.fetchProjectsCmd(m.fetchSeq))
}

func (m *Model) startDetailFetch(projectID int) tea.Cmd {
	m.fetchSeq++
	m.activeProjectID = projectID
	m.appState.BeginDetailFetch()
	return tea.Batch(m.spinner.Tick, m.fetchDetailCmd(m.fetchSeq, projectID))
}

func (m Model) loadingActive() bool {
	if m.mutating {
		return true
	}
	switch m.view {
	case viewProjects:
		return m.appState.ListPhase() == state.Loading
	case viewDetail:
		return m.appState.DetailPhase() == state.Loading
	}
	return false
}

func (m Model) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			if m.view == viewLogin {
				m.openRegisterForm()
			} else {
				m.openLoginForm()
			}
			return m, m.form.Init()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.mutating {
			return m, nil
		}
		m.mutating = true
		if m.view == viewRegister {
			req := authservice.RegisterRequest{
				Username:        m.formState.Username,
				Password:        m.formState.Password,
				ConfirmPassword: m.formState.ConfirmPassword,
			}
			return m, tea.Batch(m.spinner.Tick, m.registerCmd(req))
		}
		return m, tea.Batch(m.spinner.Tick, m.loginCmd(m.formState.Username, m.formState.Password))
	case huh.StateAborted:
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notifications.Clear()

	projects := m.appState.Projects()

	switch key.String() {
	case "q":
		return m, tea.Quit

	case "r":
		return m, m.startListFetch()

	case "j", "down":
		m.uiState.SetSelectedProject(m.uiState.SelectedProject() + 1)
		m.uiState.ClampProject(len(projects))

	case "k", "up":
		m.uiState.SetSelectedProject(m.uiState.SelectedProject() - 1)
		m.uiState.ClampProject(len(projects))

	case "enter":
		if m.appState.ListPhase() != state.Loaded || len(projects) == 0 {
			return m, nil
		}
		selected := projects[m.uiState.SelectedProject()]
		m.view = viewDetail
		m.uiState.SetSelectedTask(0)
		m.appState.ClearDetail()
		return m, m.startDetailFetch(selected.ID)

	case "n":
		if m.mutating {
			return m, nil
		}
		m.openProjectForm()
		return m, m.form.Init()

	case "d":
		if m.mutating || m.appState.ListPhase() != state.Loaded || len(projects) == 0 {
			return m, nil
		}
		selected := projects[m.uiState.SelectedProject()]
		m.pendingDelete = deleteTarget{kind: deleteProject, id: selected.ID, label: selected.Title}
		m.view = viewConfirmDelete

	case "L":
		if err := m.app.AuthService.Logout(); err != nil {
			m.notifications.Add(state.LevelError, displayError(err))
			return m, nil
		}
		m.notifications.Add(state.LevelInfo, "Logged out")
		m.openLoginForm()
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notifications.Clear()

	detail := m.appState.Detail()
	var taskCount int
	if detail != nil {
		taskCount = len(detail.Tasks)
	}

	switch key.String() {
	case "q":
		return m, tea.Quit

	case "esc", "backspace":
		m.view = viewProjects
		m.appState.ClearDetail()
		return m, m.startListFetch()

	case "r":
		return m, m.startDetailFetch(m.activeProjectID)

	case "j", "down":
		m.uiState.SetSelectedTask(m.uiState.SelectedTask() + 1)
		m.uiState.ClampTask(taskCount)

	case "k", "up":
		m.uiState.SetSelectedTask(m.uiState.SelectedTask() - 1)
		m.uiState.ClampTask(taskCount)

	case "t", " ":
		if m.mutating || m.appState.DetailPhase() != state.Loaded || taskCount == 0 {
			return m, nil
		}
		selected := detail.Tasks[m.uiState.SelectedTask()]
		m.mutating = true
		return m, tea.Batch(m.spinner.Tick, m.toggleTaskCmd(selected.ID))

	case "n":
		if m.mutating || m.appState.DetailPhase() != state.Loaded {
			return m, nil
		}
		m.openTaskForm(0, "", "")
		return m, m.form.Init()

	case "e":
		if m.mutating || m.appState.DetailPhase() != state.Loaded || taskCount == 0 {
			return m, nil
		}
		selected := detail.Tasks[m.uiState.SelectedTask()]
		m.openTaskForm(selected.ID, selected.Title, converters.DateOnly(selected.DueDate))
		return m, m.form.Init()

	case "d":
		if m.mutating || m.appState.DetailPhase() != state.Loaded || taskCount == 0 {
			return m, nil
		}
		selected := detail.Tasks[m.uiState.SelectedTask()]
		m.pendingDelete = deleteTarget{kind: deleteTask, id: selected.ID, label: selected.Title}
		m.view = viewConfirmDelete
	}
	return m, nil
}

func (m Model) updateEntityForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	origin := viewProjects
	if m.view == viewTaskForm {
		origin = viewDetail
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.view = origin
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		m.view = origin
		m.form = nil
		return m, nil

	case huh.StateCompleted:
		if m.mutating {
			return m, nil
		}
		confirmed := m.formState.Confirm
		editing := m.formState.EditingTaskID
		title := m.formState.Title
		description := m.formState.Description
		due := m.formState.Due

		fromTaskForm := m.view == viewTaskForm
		m.view = origin
		m.form = nil
		if !confirmed {
			return m, nil
		}
		m.mutating = true

		if !fromTaskForm {
			return m, tea.Batch(m.spinner.Tick, m.createProjectCmd(title, description))
		}

		// The field validator already rejected bad input; a zero due
		// date means the task is due now.
		dueDate, _ := converters.ParseDateOnly(due)

		if editing != 0 {
			var completed bool
			if detail := m.appState.Detail(); detail != nil {
				if current := detail.FindTask(editing); current != nil {
					completed = current.IsCompleted
				}
			}
			req := taskservice.UpdateTaskRequest{
				TaskID:      editing,
				Title:       title,
				DueDate:     dueDate,
				IsCompleted: completed,
			}
			return m, tea.Batch(m.spinner.Tick, m.updateTaskCmd(req))
		}

		req := taskservice.CreateTaskRequest{
			ProjectID: m.activeProjectID,
			Title:     title,
			DueDate:   dueDate,
		}
		return m, tea.Batch(m.spinner.Tick, m.createTaskCmd(req))
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	origin := viewProjects
	if m.pendingDelete.kind == deleteTask {
		origin = viewDetail
	}

	switch key.String() {
	case "y", "Y":
		m.view = origin
		m.mutating = true
		if m.pendingDelete.kind == deleteTask {
			return m, tea.Batch(m.spinner.Tick, m.deleteTaskCmd(m.pendingDelete.id))
		}
		return m, tea.Batch(m.spinner.Tick, m.deleteProjectCmd(m.pendingDelete.id))

	case "n", "N", "esc":
		m.view = origin
		return m, nil
	}
	return m, nil
}
