package taskissues

import (
	"fmt"
	"strings"
)

// InitParams contains parameters for Init.
type InitParams struct {
	// BaseURL is stored as is; when empty and Interactive, the user is asked for it.
	BaseURL string
	// Browser is the browser command, empty for $BROWSER or the system handler.
	Browser string
	// Force overwrites an existing configuration without asking.
	Force bool
	// Interactive allows questions on the terminal.
	Interactive bool
}

// Init writes the ti configuration, starting from the defaults.
func (t *realTaskIssues) Init(params InitParams) error {
	path := t.deps.Config.GetConfigPath()

	if !params.Force {
		if err := t.confirmOverwrite(path, params.Interactive); err != nil {
			return err
		}
	}

	cfg := t.deps.Config.DefaultConfig()
	cfg.Browser = strings.TrimSpace(params.Browser)
	cfg.BaseURL = strings.TrimSpace(params.BaseURL)

	if cfg.BaseURL == "" && params.Interactive {
		base, err := t.deps.Prompt.PromptForBaseURL(t.remoteBaseURL(cfg.Remote))
		if err != nil {
			return err
		}
		cfg.BaseURL = base
	}

	if err := t.deps.Config.SaveConfig(cfg); err != nil {
		return err
	}

	t.VerbosePrint("Configuration written to %s", path)
	return nil
}

// confirmOverwrite fails when a configuration exists and the user does not agree to replace it.
func (t *realTaskIssues) confirmOverwrite(path string, interactive bool) error {
	_, err := t.deps.Config.GetConfig()
	if isNotInitialized(err) {
		return nil
	}

	if !interactive {
		return fmt.Errorf("%w: %s exists, use --force to overwrite it", ErrAlreadyInitialized, path)
	}

	overwrite, err := t.deps.Prompt.PromptForConfirmation(
		fmt.Sprintf("Configuration %s already exists. Overwrite?", path), false)
	if err != nil {
		return err
	}
	if !overwrite {
		return ErrInitCancelled
	}
	return nil
}
