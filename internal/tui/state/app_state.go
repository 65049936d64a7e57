package state

import "projectman/internal/models"

// Phase is the lifecycle of a fetched snapshot. Every view is either
// loading, showing the last successful snapshot, or showing an error.
// Loaded transitions back to Loading on every mutation-triggered
// re-fetch; there are no partial states.
type Phase int

const (
	Loading Phase = iota
	Loaded
	Errored
)

// AppState holds the data snapshots fetched from the backend. A
// snapshot is always replaced wholesale by the next successful fetch,
// never patched in place.
type AppState struct {
	projects []models.Project
	detail   *models.ProjectDetail

	listPhase Phase
	listError string

	detailPhase Phase
	detailError string
}

// NewAppState creates an AppState with both views in Loading.
func NewAppState() *AppState {
	return &AppState{}
}

// Projects returns the current project list snapshot.
func (s *AppState) Projects() []models.Project {
	return s.projects
}

// SetProjects replaces the project list snapshot and marks it Loaded.
func (s *AppState) SetProjects(projects []models.Project) {
	s.projects = projects
	s.listPhase = Loaded
	s.listError = ""
}

// Detail returns the current project detail snapshot, or nil.
func (s *AppState) Detail() *models.ProjectDetail {
	return s.detail
}

// SetDetail replaces the detail snapshot and marks it Loaded.
func (s *AppState) SetDetail(detail *models.ProjectDetail) {
	s.detail = detail
	s.detailPhase = Loaded
	s.detailError = ""
}

// ClearDetail drops the detail snapshot, e.g. when navigating back.
func (s *AppState) ClearDetail() {
	s.detail = nil
	s.detailPhase = Loading
	s.detailError = ""
}

// ListPhase returns the list view's phase.
func (s *AppState) ListPhase() Phase {
	return s.listPhase
}

// BeginListFetch moves the list view to Loading.
func (s *AppState) BeginListFetch() {
	s.listPhase = Loading
}

// FailList moves the list view to Errored with a display message.
func (s *AppState) FailList(message string) {
	s.listPhase = Errored
	s.listError = message
}

// ListError returns the list view's error message, if any.
func (s *AppState) ListError() string {
	return s.listError
}

// DetailPhase returns the detail view's phase.
func (s *AppState) DetailPhase() Phase {
	return s.detailPhase
}

// BeginDetailFetch moves the detail view to Loading.
func (s *AppState) BeginDetailFetch() {
	s.detailPhase = Loading
}

// FailDetail moves the detail view to Errored with a display message.
func (s *AppState) FailDetail(message string) {
	s.detailPhase = Errored
	s.detailError = message
}

// DetailError returns the detail view's error message, if any.
func (s *AppState) DetailError() string {
	return s.detailError
}
