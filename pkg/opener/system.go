package opener

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"time"

	"github.com/vizioz/task-issues/pkg/fs"
)

const (
	// SystemName is the name identifier for the system launcher provider.
	SystemName = "system"
	// DefaultLaunchGrace is how long the launcher is watched for an early failure.
	DefaultLaunchGrace = 1500 * time.Millisecond
)

// launcher describes the OS helper that hands a URI to its default handler.
type launcher struct {
	command string
	args    []string
	// exit codes meaning "no application registered for this protocol"
	noHandlerCodes []int
}

// launcherFor returns the launcher for the given GOOS.
func launcherFor(goos string) (launcher, bool) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "illumos", "solaris":
		// xdg-open exits 3 when no method is available for the URI
		return launcher{command: "xdg-open", noHandlerCodes: []int{3}}, true
	case "darwin":
		// open exits 1 when no application knows how to open the URL
		return launcher{command: "open", noHandlerCodes: []int{1}}, true
	case "windows":
		return launcher{command: "rundll32", args: []string{"url.dll,FileProtocolHandler"}}, true
	default:
		return launcher{}, false
	}
}

// SystemProvider hands URIs to the operating system's default handler.
type SystemProvider struct {
	fs       fs.FS
	launcher launcher
	known    bool
	grace    time.Duration
}

// NewSystemProvider creates a system provider for the running OS.
func NewSystemProvider(fs fs.FS, grace time.Duration) *SystemProvider {
	return newSystemProviderFor(fs, grace, runtime.GOOS)
}

func newSystemProviderFor(fs fs.FS, grace time.Duration, goos string) *SystemProvider {
	if grace <= 0 {
		grace = DefaultLaunchGrace
	}

	l, known := launcherFor(goos)
	return &SystemProvider{
		fs:       fs,
		launcher: l,
		known:    known,
		grace:    grace,
	}
}

// Name returns the name of the provider.
func (s *SystemProvider) Name() string {
	return SystemName
}

// Available reports whether a launcher is known for this OS.
func (s *SystemProvider) Available() bool {
	return s.known
}

// Open runs the launcher. A launcher still running after the grace period
// counts as opened.
func (s *SystemProvider) Open(uri *url.URL) (Outcome, error) {
	args := append(slices.Clone(s.launcher.args), uri.String())

	err := s.fs.LaunchCommand(s.grace, s.launcher.command, args...)
	if err == nil {
		return OutcomeOpened, nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return OutcomeNotFound, nil
	}

	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && slices.Contains(s.launcher.noHandlerCodes, coded.ExitCode()) {
		return OutcomeNoHandler, nil
	}

	return OutcomeFailed, fmt.Errorf("%w: %s: %w", ErrLaunchFailed, s.launcher.command, err)
}
