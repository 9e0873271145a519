// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrRemoteNotFound = errors.New("git remote not found")
	ErrGrepFailed     = errors.New("git grep failed")
)
