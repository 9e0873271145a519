package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrInvalidBaseURL     = errors.New("base_url must be an absolute URL")
	ErrInvalidLaunchGrace = errors.New("launch_grace must be a positive duration")
	ErrEmptyMarker        = errors.New("markers cannot contain an empty marker")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("ti configuration not found. Run 'ti init' to initialize")
)
