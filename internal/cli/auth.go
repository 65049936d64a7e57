package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	authservice "projectman/internal/services/auth"
)

func newLoginCmd(server *string) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*server)
			if err != nil {
				return err
			}

			// Prompt for whatever wasn't passed as a flag.
			if username == "" || password == "" {
				var fields []huh.Field
				if username == "" {
					fields = append(fields, huh.NewInput().Title("Username").Value(&username))
				}
				if password == "" {
					fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password))
				}
				if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
					return err
				}
			}

			ctx, cancel := commandContext()
			defer cancel()
			if err := a.AuthService.Login(ctx, username, password); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted if omitted)")
	return cmd
}

func newRegisterCmd(server *string) *cobra.Command {
	var username, password, confirmPassword string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*server)
			if err != nil {
				return err
			}

			if username == "" || password == "" {
				var fields []huh.Field
				if username == "" {
					fields = append(fields, huh.NewInput().Title("Username").Value(&username))
				}
				if password == "" {
					fields = append(fields,
						huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
						huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&confirmPassword),
					)
				}
				if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
					return err
				}
			}
			if confirmPassword == "" {
				confirmPassword = password
			}

			ctx, cancel := commandContext()
			defer cancel()
			req := authservice.RegisterRequest{
				Username:        username,
				Password:        password,
				ConfirmPassword: confirmPassword,
			}
			if err := a.AuthService.Register(ctx, req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created. Run `projectman login` to sign in.\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted if omitted)")
	return cmd
}

func newLogoutCmd(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*server)
			if err != nil {
				return err
			}
			if err := a.AuthService.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
