package opener

import "errors"

// Opener-specific errors.
var (
	// ErrLaunchFailed is returned when a launcher fails for an unexpected reason.
	ErrLaunchFailed = errors.New("failed to launch URI handler")

	// ErrOpenFailed wraps an unexpected fault raised by the fallback provider.
	ErrOpenFailed = errors.New("failed to open URI")
)
