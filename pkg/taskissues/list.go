package taskissues

import (
	"github.com/vizioz/task-issues/pkg/issue"
	"github.com/vizioz/task-issues/pkg/task"
)

// ListParams contains parameters for List.
type ListParams struct {
	// All keeps the tasks without issue reference.
	All bool
}

// TaskWithReference is a task with the issue it refers to.
type TaskWithReference struct {
	Task      task.Task
	Found     bool
	Reference issue.Reference
	URL       string
}

// List returns the scanned tasks with their issue reference and URL, in list order.
func (t *realTaskIssues) List(params ListParams) ([]TaskWithReference, error) {
	cfg, err := t.getConfig()
	if err != nil {
		return nil, err
	}

	tasks, err := t.tasksFrom(nil, cfg)
	if err != nil {
		return nil, err
	}

	var base string
	result := make([]TaskWithReference, 0, len(tasks))
	for _, tk := range tasks {
		ref, found := issue.Extract(tk.Description)
		if !found {
			if params.All {
				result = append(result, TaskWithReference{Task: tk})
			}
			continue
		}

		if base == "" {
			base = t.resolveBaseURL(cfg)
		}
		result = append(result, TaskWithReference{
			Task:      tk,
			Found:     true,
			Reference: ref,
			URL:       issue.Resolve(base, ref),
		})
	}

	return result, nil
}
