package taskissues

import (
	"errors"
	"fmt"

	"github.com/vizioz/task-issues/pkg/issue"
	"github.com/vizioz/task-issues/pkg/prompt"
	"github.com/vizioz/task-issues/pkg/task"
)

// Selection tells how the task is chosen when the list holds more than one.
type Selection int

// Selection strategies.
const (
	// SelectFirst takes the first task of the list.
	SelectFirst Selection = iota
	// SelectIndex takes the task at OpenParams.Index.
	SelectIndex
	// SelectInteractive lets the user pick the task.
	SelectInteractive
)

// OpenParams contains parameters for Open.
type OpenParams struct {
	// Text, when not empty, is the single task; otherwise the working tree is scanned.
	Text      []string
	Selection Selection
	// Index is zero-based and only read with SelectIndex.
	Index int
	// PrintOnly resolves the URL without opening it.
	PrintOnly bool
}

// OpenResult describes what Open did.
type OpenResult struct {
	// Task is the selected task, zero when none was selected.
	Task task.Task
	// Empty is set when the task list had no task.
	Empty bool
	// Cancelled is set when the user left the selector without choosing.
	Cancelled bool
	// Found is set when the task holds an issue reference.
	Found     bool
	Reference issue.Reference
	URL       string
	// Opened is set when a handler was launched for URL.
	Opened bool
}

// Open picks a task, extracts its issue reference and opens the issue page.
// A task without reference, or a URL no handler could open, is reported
// through the result rather than as an error.
func (t *realTaskIssues) Open(params OpenParams) (OpenResult, error) {
	cfg, err := t.getConfig()
	if err != nil {
		return OpenResult{}, err
	}

	tasks, err := t.tasksFrom(params.Text, cfg)
	if err != nil {
		return OpenResult{}, err
	}
	if len(tasks) == 0 {
		return OpenResult{Empty: true}, nil
	}

	selected, err := t.selectTask(tasks, params)
	if errors.Is(err, prompt.ErrNoSelection) {
		return OpenResult{Cancelled: true}, nil
	}
	if err != nil {
		return OpenResult{}, err
	}

	result := OpenResult{Task: selected}

	ref, found := issue.Extract(selected.Description)
	if !found {
		t.VerbosePrint("No issue reference in %q", selected.Description)
		return result, nil
	}

	result.Found = true
	result.Reference = ref
	result.URL = issue.Resolve(t.resolveBaseURL(cfg), ref)

	if params.PrintOnly {
		return result, nil
	}

	t.VerbosePrint("Opening %s", result.URL)
	opened, err := t.uriOpener(cfg).Open(result.URL)
	if err != nil {
		return result, err
	}
	result.Opened = opened

	return result, nil
}

// selectTask applies the selection strategy. A single task is always used directly.
func (t *realTaskIssues) selectTask(tasks []task.Task, params OpenParams) (task.Task, error) {
	if len(tasks) == 1 {
		return tasks[0], nil
	}

	switch params.Selection {
	case SelectFirst:
		return task.Pick(tasks, 0)
	case SelectIndex:
		return task.Pick(tasks, params.Index)
	case SelectInteractive:
		selected, err := t.deps.Prompt.PromptSelectTask(tasks)
		if err != nil && !errors.Is(err, prompt.ErrNoSelection) {
			return task.Task{}, fmt.Errorf("%w: %w", ErrSelectTask, err)
		}
		return selected, err
	default:
		return task.Task{}, fmt.Errorf("%w: %d", ErrUnknownSelection, params.Selection)
	}
}
