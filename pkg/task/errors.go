package task

import "errors"

// Task-specific error types.
var (
	ErrScanFailed           = errors.New("failed to scan for tasks")
	ErrUnexpectedGrepOutput = errors.New("unexpected git grep output")
	ErrNoTasks              = errors.New("the task list is empty")
	ErrTaskIndexOutOfRange  = errors.New("task index out of range")
)
