package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vizioz/task-issues/cmd/ti/internal/cli"
	"github.com/vizioz/task-issues/pkg/taskissues"
)

func createOpenCmd() *cobra.Command {
	var (
		first     bool
		index     int
		printOnly bool
	)

	openCmd := &cobra.Command{
		Use:   "open [text...]",
		Short: "Open the issue referenced by a task",
		Long: `Open the issue referenced by a task in the browser.

With text, the text is the task. Without text, the TODO, FIXME and HACK comments
of the current working tree are the task list, and the task is picked
interactively when the terminal allows it, else the first one is used.

Examples:
  ti open "Fix login bug #123"
  ti open
  ti open --first
  ti open --index 3 --print`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := taskissues.OpenParams{
				Text:      args,
				PrintOnly: printOnly,
			}

			switch {
			case first:
				params.Selection = taskissues.SelectFirst
			case cmd.Flags().Changed("index"):
				if index < 1 {
					return fmt.Errorf("invalid --index %d: tasks are numbered from 1", index)
				}
				params.Selection = taskissues.SelectIndex
				params.Index = index - 1
			case isInteractive():
				params.Selection = taskissues.SelectInteractive
			default:
				params.Selection = taskissues.SelectFirst
			}

			ti, err := newTaskIssues()
			if err != nil {
				return err
			}

			result, err := ti.Open(params)
			if err != nil {
				return err
			}

			reportOpen(cmd, result, printOnly)
			return nil
		},
	}

	openCmd.Flags().BoolVar(&first, "first", false, "Use the first task of the list")
	openCmd.Flags().IntVar(&index, "index", 0, "Use the task at this position of the list (from 1)")
	openCmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the issue URL instead of opening it")
	openCmd.MarkFlagsMutuallyExclusive("first", "index")

	return openCmd
}

func reportOpen(cmd *cobra.Command, result taskissues.OpenResult, printOnly bool) {
	switch {
	case result.Cancelled:
	case result.Empty:
		cli.Notice(cmd.ErrOrStderr(), "No task was found.")
	case !result.Found:
		cli.Notice(cmd.ErrOrStderr(), taskissues.NoReferenceNotice)
	case printOnly:
		fmt.Fprintln(cmd.OutOrStdout(), result.URL)
	case !result.Opened:
		cli.Warn(cmd.ErrOrStderr(), "Could not open %s, open it manually.", result.URL)
	}
}
