package issue

import "errors"

// Issue-specific error types.
var (
	ErrReferenceNotFound = errors.New("no issue reference found")
)
