// Package main provides the command-line interface of ti, the task issue opener.
package main

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/vizioz/task-issues/cmd/ti/internal/cli"
)

// Seams replaced by tests.
var (
	newTaskIssues  = cli.NewTaskIssues
	isInteractive  = cli.IsInteractive
	writeClipboard = clipboard.WriteAll
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ti",
		Short: "Task Issues - open the issue referenced by a task",
		Long: `Open the issue tracker page of the "#number" reference found in a task.

Tasks are either the text given on the command line or the TODO, FIXME and HACK
comments of the current git working tree.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress notices and warnings")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(createOpenCmd(), createListCmd(), createURLCmd(), createInitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
