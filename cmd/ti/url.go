package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vizioz/task-issues/cmd/ti/internal/cli"
	"github.com/vizioz/task-issues/pkg/issue"
)

func createURLCmd() *cobra.Command {
	var copyURL bool

	urlCmd := &cobra.Command{
		Use:   "url <text...>",
		Short: "Print the issue URL referenced by a text",
		Long: `Print the issue URL of the first "#number" reference of the text.

Examples:
  ti url "Fix login bug #123"
  git log -1 --format=%s | xargs ti url --copy`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ti, err := newTaskIssues()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			url, found, err := ti.ResolveURL(text)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w in %q", issue.ErrReferenceNotFound, text)
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)

			if copyURL {
				if err := writeClipboard(url); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				cli.Notice(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			return nil
		},
	}

	urlCmd.Flags().BoolVar(&copyURL, "copy", false, "Also copy the URL to the clipboard")

	return urlCmd
}
