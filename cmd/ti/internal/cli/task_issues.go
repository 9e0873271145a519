package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vizioz/task-issues/pkg/dependencies"
	"github.com/vizioz/task-issues/pkg/logger"
	"github.com/vizioz/task-issues/pkg/taskissues"
)

// NewTaskIssues creates a TaskIssues instance working on the current directory.
func NewTaskIssues() (taskissues.TaskIssues, error) {
	deps := dependencies.New()
	deps = deps.WithConfig(NewConfigManager(deps.FS))

	ti, err := taskissues.NewTaskIssues(taskissues.NewTaskIssuesParams{
		Dependencies: deps,
		RepoPath:     ".",
	})
	if err != nil {
		return nil, err
	}

	if Verbose {
		ti.SetLogger(logger.NewDefaultLogger())
	}

	return ti, nil
}

// IsInteractive reports whether questions can be asked on the terminal.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
