// Package prompt provides the interactive questions and the task selector of ti.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoChoices                = errors.New("no tasks to choose from")
	ErrNoSelection              = errors.New("no task selected")
	ErrSelectionFailed          = errors.New("failed to run task selector")
	ErrInputFailed              = errors.New("failed to read user input")
)
