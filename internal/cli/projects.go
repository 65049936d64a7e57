package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	projectservice "projectman/internal/services/project"
)

func newProjectsCmd(server *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(server))
	cmd.AddCommand(newProjectsCreateCmd(server))
	cmd.AddCommand(newProjectsShowCmd(server))
	cmd.AddCommand(newProjectsDeleteCmd(server))
	return cmd
}

func newProjectsListCmd(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*server)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()
			projects, err := a.ProjectService.ListProjects(ctx)
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects yet")
				return nil
			}
			printProjectTable(cmd, projects)
			return nil
		},
	}
}

func newProjectsCreateCmd(server *string) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*server)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()
			req := projectservice.CreateProjectRequest{Title: title, Description: description}
			created, err := a.ProjectService.CreateProject(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %d: %s\n", created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Project title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newProjectsShowCmd(server *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}

			a, err := setup(*server)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()
			detail, err := a.ProjectService.GetProjectDetail(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (#%d)\n", detail.Title, detail.ID)
			if detail.Description != "" {
				fmt.Fprintln(out, detail.Description)
			}
			fmt.Fprintf(out, "Created %s\n\n", detail.CreatedAt.Local().Format("2006-01-02"))

			if len(detail.Tasks) == 0 {
				fmt.Fprintln(out, "No tasks for this project yet")
				return nil
			}
			printTaskTable(cmd, detail.Tasks)
			return nil
		},
	}
}

func newProjectsDeleteCmd(server *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project and all its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}

			if !yes {
				ok, err := confirm(fmt.Sprintf("Delete project %d and all of its tasks?", id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			a, err := setup(*server)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()
			if err := a.ProjectService.DeleteProject(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
