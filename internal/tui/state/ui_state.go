package state

// UIState manages cursor positions and window dimensions. Selection
// indices are clamped against the current snapshot after every
// replacement so a shrunken list never leaves the cursor out of range.
type UIState struct {
	selectedProject int
	selectedTask    int
	width           int
	height          int
}

// NewUIState creates a UIState with cursors at the top.
func NewUIState() *UIState {
	return &UIState{}
}

// SelectedProject returns the project cursor index.
func (s *UIState) SelectedProject() int {
	return s.selectedProject
}

// SetSelectedProject sets the project cursor index.
func (s *UIState) SetSelectedProject(i int) {
	s.selectedProject = i
}

// SelectedTask returns the task cursor index.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask sets the task cursor index.
func (s *UIState) SetSelectedTask(i int) {
	s.selectedTask = i
}

// ClampProject bounds the project cursor to [0, count).
func (s *UIState) ClampProject(count int) {
	s.selectedProject = clamp(s.selectedProject, count)
}

// ClampTask bounds the task cursor to [0, count).
func (s *UIState) ClampTask(count int) {
	s.selectedTask = clamp(s.selectedTask, count)
}

// SetWindowSize records the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

func clamp(i, count int) int {
	if count == 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
