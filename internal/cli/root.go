// Package cli wires the cobra command tree. Running with no
// subcommand starts the interactive TUI; subcommands are scriptable
// one-shot operations over the same services.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"projectman/internal/app"
	"projectman/internal/config"
	"projectman/internal/logging"
	"projectman/internal/session"
	"projectman/internal/tui"
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	var serverOverride string

	cmd := &cobra.Command{
		Use:          "projectman",
		Short:        "Terminal client for the Project Manager API",
		Long:         "Projectman manages projects and their tasks through the Project Manager REST API,\neither interactively (no arguments) or via scriptable subcommands.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			a, err := setup(serverOverride)
			if err != nil {
				return err
			}
			if err := logging.Init(); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return tui.Run(a)
		},
	}

	cmd.PersistentFlags().StringVar(&serverOverride, "server", "", "Backend base URL (overrides config)")

	cmd.AddCommand(newLoginCmd(&serverOverride))
	cmd.AddCommand(newRegisterCmd(&serverOverride))
	cmd.AddCommand(newLogoutCmd(&serverOverride))
	cmd.AddCommand(newProjectsCmd(&serverOverride))
	cmd.AddCommand(newTasksCmd(&serverOverride))

	return cmd
}

// setup loads config and the session store and wires the app container.
func setup(serverOverride string) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if serverOverride != "" {
		cfg.Server.BaseURL = serverOverride
	}

	sessions, err := session.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	return app.New(cfg, sessions), nil
}
