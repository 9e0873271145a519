package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/vizioz/task-issues/cmd/ti/internal/cli"
	"github.com/vizioz/task-issues/pkg/taskissues"
)

func createListCmd() *cobra.Command {
	var all bool

	listCmd := &cobra.Command{
		Use:   "list [--all]",
		Short: "List the tasks of the working tree that reference an issue",
		Long: `List the TODO, FIXME and HACK comments of the current working tree
that reference an issue, with the issue URL.

Flags:
  --all   Also list the tasks without issue reference`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ti, err := newTaskIssues()
			if err != nil {
				return err
			}

			items, err := ti.List(taskissues.ListParams{All: all})
			if err != nil {
				return err
			}

			if len(items) == 0 {
				cli.Notice(cmd.ErrOrStderr(), "No task was found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTasks(items))
			return nil
		},
	}

	listCmd.Flags().BoolVarP(&all, "all", "a", false, "Also list the tasks without issue reference")

	return listCmd
}

// renderTasks lays the tasks out in borderless columns.
func renderTasks(items []taskissues.TaskWithReference) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("#", "ISSUE", "LOCATION", "TASK")

	for i, item := range items {
		ref := "-"
		url := ""
		if item.Found {
			ref = "#" + item.Reference.String()
			url = item.URL
		}
		t.Row(fmt.Sprintf("%d", i+1), ref, item.Task.Location(), item.Task.Description)
		if url != "" {
			t.Row("", "", "", url)
		}
	}

	return t.String()
}
