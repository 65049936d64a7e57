package huhforms

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"projectman/internal/converters"
)

// CreateTaskForm creates a huh form for adding or editing a task.
// The due date is entered as YYYY-MM-DD; leaving it blank means the
// task is due now. editing switches the confirmation prompt wording.
func CreateTaskForm(
	title *string,
	dueDate *string,
	confirm *bool,
	editing bool,
) *huh.Form {
	confirmTitle := "Create this task?"
	if editing {
		confirmTitle = "Save changes?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Value(title),

		huh.NewInput().
			Key("due").
			Title("Due Date (YYYY-MM-DD)").
			Placeholder("blank for today").
			Validate(validateDueDate).
			Value(dueDate),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithShowHelp(false)
}

func validateDueDate(value string) error {
	if _, err := converters.ParseDateOnly(value); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}
