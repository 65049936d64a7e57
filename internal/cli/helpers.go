package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"projectman/internal/converters"
	"projectman/internal/models"
)

// cliTimeout bounds every one-shot command's API call.
const cliTimeout = 30 * time.Second

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cliTimeout)
}

// confirm prompts before a destructive operation. Scripted callers
// bypass it with --yes.
func confirm(message string) (bool, error) {
	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// printProjectTable renders the project list snapshot.
func printProjectTable(cmd *cobra.Command, projects []models.Project) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED\tDESCRIPTION")
	for _, p := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Title, p.CreatedAt.Local().Format("2006-01-02"), p.Description)
	}
	w.Flush()
}

// printTaskTable renders the tasks of a detail snapshot with their
// derived status labels.
func printTaskTable(cmd *cobra.Command, tasks []models.Task) {
	now := time.Now()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDUE\tSTATUS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Title, converters.FormatDue(t.DueDate), t.Status(now))
	}
	w.Flush()
}
