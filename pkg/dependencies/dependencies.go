// Package dependencies provides a centralized dependency container for ti.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/vizioz/task-issues/pkg/config"
	"github.com/vizioz/task-issues/pkg/forge"
	"github.com/vizioz/task-issues/pkg/fs"
	"github.com/vizioz/task-issues/pkg/git"
	"github.com/vizioz/task-issues/pkg/logger"
	"github.com/vizioz/task-issues/pkg/opener"
	"github.com/vizioz/task-issues/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrGitMissing    = errors.New("git dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrPromptMissing = errors.New("prompt dependency is required but not set")
	ErrForgeMissing  = errors.New("forge manager dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Git    git.Git
	Config config.Manager
	Logger logger.Logger
	Prompt prompt.Prompter
	Forge  forge.ManagerInterface
	// Opener is optional: when nil, one is built from the loaded configuration.
	Opener opener.URIOpener
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	l := logger.NewNoopLogger()
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(),
		Logger: l,
		Prompt: prompt.NewPrompt(),
		Forge:  forge.NewManager(l),
		// Config and Opener depend on the configuration path and content,
		// they are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithForge sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForge(fm forge.ManagerInterface) *Dependencies {
	d.Forge = fm
	return d
}

// WithOpener sets the URI opener and returns the instance for chaining.
func (d *Dependencies) WithOpener(o opener.URIOpener) *Dependencies {
	d.Opener = o
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Forge, ErrForgeMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
