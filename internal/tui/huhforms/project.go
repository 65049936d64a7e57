package huhforms

import "github.com/charmbracelet/huh"

// CreateProjectForm creates a huh form for adding a new project
func CreateProjectForm(title, description *string, confirm *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Project Title").
			Placeholder("Enter project title...").
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description (optional)").
			Placeholder("Enter project description...").
			CharLimit(500).
			Lines(3).
			Value(description),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this project?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithShowHelp(false)
}
