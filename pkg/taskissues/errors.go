package taskissues

import "errors"

// Error definitions for the task-issues orchestrator.
var (
	ErrAlreadyInitialized = errors.New("ti is already initialized")
	ErrInitCancelled      = errors.New("initialization cancelled")
	ErrTaskListFailed     = errors.New("failed to list tasks")
	ErrSelectTask         = errors.New("failed to select a task")
	ErrUnknownSelection   = errors.New("unknown selection strategy")
)
