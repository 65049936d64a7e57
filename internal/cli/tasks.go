package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"projectman/internal/converters"
	taskservice "projectman/internal/services/task"
)

func newTasksCmd(server *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksAddCmd(server))
	cmd.AddCommand(newTasksUpdateCmd(server))
	cmd.AddCommand(newTasksToggleCmd(server))
	cmd.AddCommand(newTasksDeleteCmd(server))
	return cmd
}

func newTasksAddCmd(server *string) *cobra.Command {
	var projectID int
	var title, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*server)
			if err != nil {
				return err
			}

			dueDate, err := converters.ParseDateOnly(due)
			if err != nil {
				return fmt.Errorf("invalid --due value %q (want YYYY-MM-DD)", due)
			}

			ctx, cancel := commandContext()
			defer cancel()
			req := taskservice.CreateTaskRequest{ProjectID: projectID, Title: title, DueDate: dueDate}
			created, err := a.TaskService.CreateTask(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s (due %s)\n",
				created.ID, created.Title, converters.FormatDue(created.DueDate))
			return nil
		},
	}

	cmd.Flags().IntVarP(&projectID, "project", "P", 0, "Parent project ID")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, defaults to today)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksUpdateCmd(server *string) *cobra.Command {
	var projectID int
	var title, due string
	var completed bool

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's title, due date, or completion",
		Long: "Update a task. The backend takes a full replacement of title, due date,\n" +
			"and completion, so unchanged fields are sourced from the current project\n" +
			"detail before the update is sent.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			a, err := setup(*server)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			// Source unchanged fields from the authoritative snapshot.
			detail, err := a.ProjectService.GetProjectDetail(ctx, projectID)
			if err != nil {
				return err
			}
			current := detail.FindTask(taskID)
			if current == nil {
				return fmt.Errorf("task %d not found in project %d", taskID, projectID)
			}

			req := taskservice.UpdateTaskRequest{
				TaskID:      taskID,
				Title:       current.Title,
				DueDate:     current.DueDate,
				IsCompleted: current.IsCompleted,
			}
			if cmd.Flags().Changed("title") {
				req.Title = title
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := converters.ParseDateOnly(due)
				if err != nil {
					return fmt.Errorf("invalid --due value %q (want YYYY-MM-DD)", due)
				}
				req.DueDate = dueDate
			}
			if cmd.Flags().Changed("completed") {
				req.IsCompleted = completed
			}

			updated, err := a.TaskService.UpdateTask(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s (due %s, %s)\n",
				updated.ID, updated.Title, converters.FormatDue(updated.DueDate), completionWord(updated.IsCompleted))
			return nil
		},
	}

	cmd.Flags().IntVarP(&projectID, "project", "P", 0, "Parent project ID")
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&completed, "completed", false, "Completion state")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTasksToggleCmd(server *string) *cobra.Command {
	var projectID int

	cmd := &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			a, err := setup(*server)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()
			detail, err := a.ProjectService.GetProjectDetail(ctx, projectID)
			if err != nil {
				return err
			}
			current := detail.FindTask(taskID)
			if current == nil {
				return fmt.Errorf("task %d not found in project %d", taskID, projectID)
			}

			toggled, err := a.TaskService.ToggleCompletion(ctx, *current)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task %d is now %s\n", toggled.ID, completionWord(toggled.IsCompleted))
			return nil
		},
	}

	cmd.Flags().IntVarP(&projectID, "project", "P", 0, "Parent project ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTasksDeleteCmd(server *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID %q", args[0])
			}

			if !yes {
				ok, err := confirm(fmt.Sprintf("Delete task %d?", taskID))
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
			if err := a.TaskService.DeleteTask(ctx, taskID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", taskID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func completionWord(completed bool) string {
	if completed {
		return "completed"
	}
	return "pending"
}
