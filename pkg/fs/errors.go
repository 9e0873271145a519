package fs

import "errors"

// Error definitions for fs package.
var (
	// Path resolution errors.
	ErrPathResolution = errors.New("path resolution failed")

	// Command execution errors.
	ErrEmptyCommand = errors.New("command cannot be empty")
)
