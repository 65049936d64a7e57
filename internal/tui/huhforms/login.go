package huhforms

import "github.com/charmbracelet/huh"

// CreateLoginForm creates a huh form for signing in
// The form uses pointers to update values in place
func CreateLoginForm(username, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("username").
			Title("Username").
			Placeholder("Enter username...").
			Value(username),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithShowHelp(false)
}

// CreateRegisterForm creates a huh form for creating an account.
// Validation (empty fields, length, confirmation match) happens in the
// auth service so the messages stay identical across CLI and TUI.
func CreateRegisterForm(username, password, confirmPassword *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("username").
			Title("Username").
			Placeholder("Enter username...").
			Value(username),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password),

		huh.NewInput().
			Key("confirm").
			Title("Confirm Password").
			EchoMode(huh.EchoModePassword).
			Value(confirmPassword),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithShowHelp(false)
}
