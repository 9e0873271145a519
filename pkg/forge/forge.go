package forge

import (
	"fmt"
	"regexp"

	"github.com/vizioz/task-issues/pkg/logger"
)

// remoteHostPrefix matches everything in a remote URL before its host:
// an optional scheme and an optional user (git@, user:token@).
const remoteHostPrefix = `^(?:[A-Za-z][A-Za-z0-9+.-]*://)?(?:[^@/]+@)?`

// hostPattern matches remotes whose host is exactly domain, port allowed.
func hostPattern(domain string) *regexp.Regexp {
	return regexp.MustCompile(remoteHostPrefix + regexp.QuoteMeta(domain) + `(?::\d+)?[:/]`)
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// MatchesRemote reports whether the remote URL is hosted on this forge
	MatchesRemote(remoteURL string) bool

	// IssueBaseURL builds the issue URL prefix for the repository behind remoteURL.
	// Appending a decimal issue number to the result yields the issue page.
	IssueBaseURL(remoteURL string) (string, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name
	GetForge(name string) (Forge, error)
	// GetForgeForRemote returns the forge hosting the given remote URL
	GetForgeForRemote(remoteURL string) (Forge, error)
	// IssueBaseURL resolves the issue URL prefix for the given remote URL
	IssueBaseURL(remoteURL string) (string, error)
	// SetLogger sets the logger used to report resolved remotes
	SetLogger(logger logger.Logger)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges []Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		logger: logger,
	}

	// Register forge implementations
	m.registerForges()

	return m
}

// SetLogger sets the logger used to report resolved remotes.
func (m *Manager) SetLogger(logger logger.Logger) {
	m.logger = logger
}

// registerForges registers all available forge implementations, in match order.
func (m *Manager) registerForges() {
	m.forges = append(m.forges, NewGitHub(), NewGitLab())
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	for _, forge := range m.forges {
		if forge.Name() == name {
			return forge, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
}

// GetForgeForRemote returns the forge hosting the given remote URL.
func (m *Manager) GetForgeForRemote(remoteURL string) (Forge, error) {
	for _, forge := range m.forges {
		if forge.MatchesRemote(remoteURL) {
			return forge, nil
		}
	}
	return nil, fmt.Errorf("%w: no supported forge found for remote %s", ErrUnsupportedForge, remoteURL)
}

// IssueBaseURL resolves the issue URL prefix for the given remote URL.
func (m *Manager) IssueBaseURL(remoteURL string) (string, error) {
	forge, err := m.GetForgeForRemote(remoteURL)
	if err != nil {
		return "", err
	}

	base, err := forge.IssueBaseURL(remoteURL)
	if err != nil {
		return "", err
	}

	m.logger.Logf("Remote %s is hosted on %s, issues at %s", remoteURL, forge.Name(), base)
	return base, nil
}
