// Package cli provides the shared flags, construction helpers and output of the ti CLI.
package cli

import (
	"github.com/vizioz/task-issues/pkg/config"
	"github.com/vizioz/task-issues/pkg/fs"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "~/.ti/config.yaml"

var (
	// Quiet suppresses notices and warnings.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path in use.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return DefaultConfigPath
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager(fs fs.FS) config.Manager {
	return config.NewManager(fs, GetConfigPath())
}
