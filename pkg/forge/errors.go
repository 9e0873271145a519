// Package forge maps git remotes to the issue trackers of their hosting forge.
package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge = errors.New("unsupported forge")
	ErrInvalidRemoteURL = errors.New("invalid remote URL format")
)
