package opener

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/vizioz/task-issues/pkg/fs"
)

const (
	// BrowserName is the name identifier for the browser provider.
	BrowserName = "browser"
	// BrowserEnvVar is the environment variable consulted when no browser is configured.
	BrowserEnvVar = "BROWSER"
)

// BrowserProvider opens URIs with an explicitly chosen browser command.
//
// The command may hold arguments ("firefox --new-tab") and a %s placeholder
// for the URI. Like $BROWSER, several commands may be separated by the OS
// path list separator; the first one found on PATH is used.
type BrowserProvider struct {
	fs       fs.FS
	commands []string
}

// NewBrowserProvider creates a browser provider for the given command.
// An empty command falls back to $BROWSER.
func NewBrowserProvider(fs fs.FS, command string) *BrowserProvider {
	if strings.TrimSpace(command) == "" {
		command = os.Getenv(BrowserEnvVar)
	}

	var commands []string
	for _, c := range strings.Split(command, string(os.PathListSeparator)) {
		if c = strings.TrimSpace(c); c != "" {
			commands = append(commands, c)
		}
	}

	return &BrowserProvider{
		fs:       fs,
		commands: commands,
	}
}

// Name returns the name of the provider.
func (b *BrowserProvider) Name() string {
	return BrowserName
}

// Available reports whether one of the configured browser commands is on PATH.
func (b *BrowserProvider) Available() bool {
	_, ok := b.resolve()
	return ok
}

// Open starts the browser with the URI and does not wait for it.
func (b *BrowserProvider) Open(uri *url.URL) (Outcome, error) {
	fields, ok := b.resolve()
	if !ok {
		return OutcomeNotFound, nil
	}

	name, args := fields[0], expandArgs(fields[1:], uri.String())
	if err := b.fs.ExecuteCommand(name, args...); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return OutcomeNotFound, nil
		}
		return OutcomeFailed, fmt.Errorf("%w: %s: %w", ErrLaunchFailed, name, err)
	}

	return OutcomeOpened, nil
}

// resolve returns the fields of the first configured command found on PATH.
func (b *BrowserProvider) resolve() ([]string, bool) {
	for _, command := range b.commands {
		fields := strings.Fields(command)
		if len(fields) == 0 {
			continue
		}
		if _, err := b.fs.Which(fields[0]); err == nil {
			return fields, true
		}
	}
	return nil, false
}

// expandArgs substitutes %s with the URI, or appends the URI when no
// argument holds a placeholder.
func expandArgs(args []string, uri string) []string {
	expanded := make([]string, 0, len(args)+1)
	substituted := false
	for _, arg := range args {
		if strings.Contains(arg, "%s") {
			arg = strings.ReplaceAll(arg, "%s", uri)
			substituted = true
		}
		expanded = append(expanded, arg)
	}
	if !substituted {
		expanded = append(expanded, uri)
	}
	return expanded
}
