package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"projectman/internal/app"
	"projectman/internal/tui/huhforms"
	"projectman/internal/tui/state"
)

// viewKind identifies the active screen.
type viewKind int

const (
	viewLogin viewKind = iota
	viewRegister
	viewProjects
	viewProjectForm
	viewDetail
	viewTaskForm
	viewConfirmDelete
)

// deleteKind identifies what a pending delete confirmation targets.
type deleteKind int

const (
	deleteProject deleteKind = iota
	deleteTask
)

type deleteTarget struct {
	kind  deleteKind
	id    int
	label string
}

// Model is the root bubbletea model. Snapshots, cursors, and form
// values live behind pointers in the state package so they survive the
// value copies bubbletea makes between updates; the model itself holds
// navigation and the in-flight bookkeeping for fetches and mutations.
type Model struct {
	app *app.App

	view viewKind

	appState      *state.AppState
	uiState       *state.UIState
	formState     *state.FormState
	notifications *state.NotificationState

	spinner spinner.Model
	form    *huh.Form

	pendingDelete deleteTarget

	// activeProjectID is the project the detail view is showing.
	activeProjectID int

	// fetchSeq is the sequence number of the most recent fetch.
	// Responses carrying an older seq are discarded.
	fetchSeq int

	// mutating blocks further mutation submissions until the current
	// one resolves.
	mutating bool
}

// NewModel builds the root model. The initial view depends on whether
// a session token is already stored.
func NewModel(a *app.App) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7"))

	m := Model{
		app:           a,
		appState:      state.NewAppState(),
		uiState:       state.NewUIState(),
		formState:     state.NewFormState(),
		notifications: state.NewNotificationState(),
		spinner:       sp,
	}

	if a.AuthService.LoggedIn() {
		m.view = viewProjects
	} else {
		m.view = viewLogin
		m.form = huhforms.CreateLoginForm(&m.formState.Username, &m.formState.Password)
	}
	return m
}

func (m *Model) openLoginForm() {
	m.formState.Reset()
	m.view = viewLogin
	m.form = huhforms.CreateLoginForm(&m.formState.Username, &m.formState.Password)
}

func (m *Model) openRegisterForm() {
	m.formState.Reset()
	m.view = viewRegister
	m.form = huhforms.CreateRegisterForm(
		&m.formState.Username,
		&m.formState.Password,
		&m.formState.ConfirmPassword,
	)
}

func (m *Model) openProjectForm() {
	m.formState.Reset()
	m.view = viewProjectForm
	m.form = huhforms.CreateProjectForm(
		&m.formState.Title,
		&m.formState.Description,
		&m.formState.Confirm,
	)
}

func (m *Model) openTaskForm(taskID int, title, due string) {
	m.formState.Reset()
	m.formState.Title = title
	m.formState.Due = due
	m.formState.EditingTaskID = taskID
	m.view = viewTaskForm
	m.form = huhforms.CreateTaskForm(
		&m.formState.Title,
		&m.formState.Due,
		&m.formState.Confirm,
		taskID != 0,
	)
}
