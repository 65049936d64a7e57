package state

// FormState holds the values the active huh form writes through.
// The fields live behind a pointer so the form's value bindings stay
// stable while the bubbletea model is copied between updates.
type FormState struct {
	Username        string
	Password        string
	ConfirmPassword string

	Title       string
	Description string
	Due         string
	Confirm     bool

	// EditingTaskID is nonzero while the task form edits an existing
	// task instead of creating one.
	EditingTaskID int
}

// NewFormState creates a FormState with empty values.
func NewFormState() *FormState {
	return &FormState{}
}

// Reset clears all form values.
func (s *FormState) Reset() {
	*s = FormState{}
}
