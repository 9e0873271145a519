// Package taskissues opens the issue referenced by a task of the task list.
package taskissues

import (
	"errors"
	"fmt"

	"github.com/vizioz/task-issues/pkg/config"
	"github.com/vizioz/task-issues/pkg/dependencies"
	"github.com/vizioz/task-issues/pkg/logger"
	"github.com/vizioz/task-issues/pkg/opener"
	"github.com/vizioz/task-issues/pkg/task"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=task_issues.go -destination=mocks/task_issues.gen.go -package=mocks

// NoReferenceNotice is shown when the selected task holds no issue reference.
const NoReferenceNotice = "No issue reference (#number) was found in the selected task."

// NoticeTitle prefixes every notice shown to the user.
const NoticeTitle = "Task Issues"

// TaskIssues interface provides the task list commands.
type TaskIssues interface {
	// Open picks a task, extracts its issue reference and opens the issue page.
	Open(params OpenParams) (OpenResult, error)
	// List returns the scanned tasks with their issue reference and URL.
	List(params ListParams) ([]TaskWithReference, error)
	// ResolveURL returns the issue URL referenced by text, if any.
	ResolveURL(text string) (string, bool, error)
	// Init writes the ti configuration.
	Init(params InitParams) error
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewTaskIssuesParams contains parameters for creating a new TaskIssues instance.
type NewTaskIssuesParams struct {
	Dependencies *dependencies.Dependencies
	// RepoPath is the working tree scanned for tasks and queried for its remote.
	RepoPath string
}

type realTaskIssues struct {
	deps     *dependencies.Dependencies
	repoPath string
}

// NewTaskIssues creates a new TaskIssues instance.
func NewTaskIssues(params NewTaskIssuesParams) (TaskIssues, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	repoPath := params.RepoPath
	if repoPath == "" {
		repoPath = "."
	}

	return &realTaskIssues{
		deps:     deps,
		repoPath: repoPath,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (t *realTaskIssues) VerbosePrint(msg string, args ...interface{}) {
	if t.deps.Logger != nil {
		t.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this instance.
func (t *realTaskIssues) SetLogger(logger logger.Logger) {
	t.deps.Logger = logger
	t.deps.Forge.SetLogger(logger)
}

// getConfig gets the configuration from the config manager with fallback.
func (t *realTaskIssues) getConfig() (config.Config, error) {
	return t.deps.Config.GetConfigWithFallback()
}

// resolveBaseURL returns the issue URL prefix: the configured one, else the one
// derived from the git remote, else the built-in default.
func (t *realTaskIssues) resolveBaseURL(cfg config.Config) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	if base := t.remoteBaseURL(cfg.Remote); base != "" {
		return base
	}
	t.VerbosePrint("Using default base URL %s", config.DefaultBaseURL)
	return config.DefaultBaseURL
}

// remoteBaseURL derives the issue URL prefix from the remote, or returns "".
func (t *realTaskIssues) remoteBaseURL(remote string) string {
	remoteURL, err := t.deps.Git.GetRemoteURL(t.repoPath, remote)
	if err != nil {
		t.VerbosePrint("Cannot read remote %q: %v", remote, err)
		return ""
	}

	base, err := t.deps.Forge.IssueBaseURL(remoteURL)
	if err != nil {
		t.VerbosePrint("Cannot derive issue URL from remote %s: %v", remoteURL, err)
		return ""
	}

	t.VerbosePrint("Derived base URL %s from remote %q", base, remote)
	return base
}

// uriOpener returns the configured opener, or builds the browser then system chain.
func (t *realTaskIssues) uriOpener(cfg config.Config) opener.URIOpener {
	if t.deps.Opener != nil {
		return t.deps.Opener
	}

	return opener.NewOpener(opener.NewOpenerParams{
		Preferred: []opener.Provider{opener.NewBrowserProvider(t.deps.FS, cfg.Browser)},
		Fallback:  opener.NewSystemProvider(t.deps.FS, cfg.Grace()),
		Logger:    t.deps.Logger,
	})
}

// tasksFrom lists the tasks of the command-line text, or of the working tree when text is empty.
func (t *realTaskIssues) tasksFrom(text []string, cfg config.Config) ([]task.Task, error) {
	var source task.Source
	if len(text) > 0 {
		source = task.NewTextSource(text...)
	} else {
		source = task.NewScanSource(task.NewScanSourceParams{
			Git:      t.deps.Git,
			RepoPath: t.repoPath,
			Markers:  cfg.Markers,
		})
	}

	tasks, err := source.Tasks()
	if err != nil {
		return nil, fmt.Errorf("%w from %s source: %w", ErrTaskListFailed, source.Name(), err)
	}

	t.VerbosePrint("Found %d task(s) in %s source", len(tasks), source.Name())
	return tasks, nil
}

// isNotInitialized reports whether err means the configuration file is absent.
func isNotInitialized(err error) bool {
	return errors.Is(err, config.ErrConfigNotInitialized)
}
