package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vizioz/task-issues/configs"
	"github.com/vizioz/task-issues/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
// Paths ending in .toml are read and written as TOML, anything else as YAML.
func NewManager(fs fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fs,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return Config{}, err
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := c.decode(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to default when the file is missing.
// A file that exists but cannot be parsed or validated is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}
	return Config{}, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return err
	}

	data, err := c.encode(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		// The embedded file is part of the binary
		panic(fmt.Sprintf("invalid embedded default configuration: %v", err))
	}
	config.applyDefaults()
	return config
}

func (c *realManager) isTOML() bool {
	return strings.EqualFold(filepath.Ext(c.configPath), ".toml")
}

func (c *realManager) decode(data []byte, config *Config) error {
	if c.isTOML() {
		_, err := toml.Decode(string(data), config)
		return err
	}
	return yaml.Unmarshal(data, config)
}

func (c *realManager) encode(config Config) ([]byte, error) {
	if c.isTOML() {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(config)
}
