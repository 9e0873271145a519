// Package config provides configuration management functionality for the ti command.
package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is used when neither the configuration nor the git remote yields one.
	DefaultBaseURL = "https://github.com/Vizioz/task-issues/issues/"
	// DefaultRemote is the git remote used to derive the base URL.
	DefaultRemote = "origin"
	// DefaultLaunchGrace is how long the system launcher is watched for an early failure.
	DefaultLaunchGrace = "1.5s"
)

// Config represents the application configuration.
type Config struct {
	BaseURL     string   `yaml:"base_url" toml:"base_url"`
	Remote      string   `yaml:"remote" toml:"remote"`
	Browser     string   `yaml:"browser" toml:"browser"`
	LaunchGrace string   `yaml:"launch_grace" toml:"launch_grace"`
	Markers     []string `yaml:"markers" toml:"markers"`
}

// Grace returns the parsed launch grace period.
func (c Config) Grace() time.Duration {
	d, err := time.ParseDuration(c.LaunchGrace)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultLaunchGrace)
	}
	return d
}

// applyDefaults fills fields left empty by the configuration file.
func (c *Config) applyDefaults() {
	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.LaunchGrace == "" {
		c.LaunchGrace = DefaultLaunchGrace
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
		}
	}

	if c.LaunchGrace != "" {
		d, err := time.ParseDuration(c.LaunchGrace)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidLaunchGrace, c.LaunchGrace)
		}
	}

	for _, m := range c.Markers {
		if m == "" {
			return ErrEmptyMarker
		}
	}

	return nil
}
