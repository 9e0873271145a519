// Package task provides the task items whose descriptions are searched for issue references.
package task

import "fmt"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=task.go -destination=mocks/task.gen.go -package=mocks

// SourceType tells where a task came from.
type SourceType string

// Source types.
const (
	SourceTypeText SourceType = "text"
	SourceTypeCode SourceType = "code"
)

// Task is a single item of the task list.
type Task struct {
	Source      SourceType
	Description string
	// File and Line locate code tasks; both are zero for text tasks.
	File string
	Line int
}

// Location returns "file:line" for code tasks and an empty string otherwise.
func (t Task) Location() string {
	if t.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", t.File, t.Line)
}

// Source lists tasks.
type Source interface {
	// Name returns the name of the source
	Name() string
	// Tasks returns the tasks in list order
	Tasks() ([]Task, error)
}
