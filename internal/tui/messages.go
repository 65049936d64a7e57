package tui

import "projectman/internal/models"

// Fetch results carry the sequence number of the fetch that produced
// them. The model drops any result whose seq is older than the latest
// issued fetch, so a slow response can never overwrite a newer one.

type projectsLoadedMsg struct {
	seq      int
	projects []models.Project
}

type detailLoadedMsg struct {
	seq    int
	detail *models.ProjectDetail
}

type fetchFailedMsg struct {
	seq int
	err error
}

// Mutation results. Exactly one mutation is in flight at a time; the
// model re-fetches the active snapshot after a successful one.

type mutationDoneMsg struct {
	info string
}

type mutationFailedMsg struct {
	err error
}

// Auth flow results.

type loggedInMsg struct{}

type registeredMsg struct{}

type authFailedMsg struct {
	err error
}
