package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/vizioz/task-issues/cmd/ti/internal/cli"
	"github.com/vizioz/task-issues/pkg/taskissues"
)

func createInitCmd() *cobra.Command {
	var (
		force   bool
		baseURL string
		browser string
	)

	initCmd := &cobra.Command{
		Use:   "init [--base-url <url>] [--browser <command>] [--force]",
		Short: "Write the ti configuration",
		Long: `Write the ti configuration file, ~/.ti/config.yaml unless --config is given.
A path ending in .toml is written as TOML.

Flags:
  --base-url   Issue URL prefix, the issue number is appended to it
               (default: derived from the git remote)
  --browser    Browser command, %s is replaced by the URL (default: $BROWSER, then the system handler)
  --force      Overwrite an existing configuration without asking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ti, err := newTaskIssues()
			if err != nil {
				return err
			}

			err = ti.Init(taskissues.InitParams{
				BaseURL:     baseURL,
				Browser:     browser,
				Force:       force,
				Interactive: isInteractive(),
			})
			if errors.Is(err, taskissues.ErrInitCancelled) {
				cli.Notice(cmd.ErrOrStderr(), "Configuration left unchanged.")
				return nil
			}
			if err != nil {
				return err
			}

			cli.Notice(cmd.ErrOrStderr(), "Configuration written to %s.", cli.GetConfigPath())
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration without asking")
	initCmd.Flags().StringVar(&baseURL, "base-url", "", "Issue URL prefix (default: derived from the git remote)")
	initCmd.Flags().StringVar(&browser, "browser", "", "Browser command used to open issues")

	return initCmd
}
