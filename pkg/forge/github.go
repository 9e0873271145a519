package forge

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for URL validation.
	GitHubDomain = "github.com"
)

var githubHostPattern = hostPattern(GitHubDomain)

// githubRemotePattern handles HTTPS (https://github.com/owner/repo.git),
// SCP-like SSH (git@github.com:owner/repo.git) and ssh:// remotes.
var githubRemotePattern = regexp.MustCompile(remoteHostPrefix + `github\.com(?::\d+)?[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// GitHub represents the GitHub forge implementation.
type GitHub struct{}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	return &GitHub{}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// MatchesRemote reports whether the host of the remote URL is github.com.
func (g *GitHub) MatchesRemote(remoteURL string) bool {
	return githubHostPattern.MatchString(strings.TrimSpace(remoteURL))
}

// IssueBaseURL builds https://github.com/<owner>/<repo>/issues/ from a remote URL.
func (g *GitHub) IssueBaseURL(remoteURL string) (string, error) {
	matches := githubRemotePattern.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if len(matches) != 3 {
		return "", fmt.Errorf("%w: %s", ErrInvalidRemoteURL, remoteURL)
	}

	owner, repo := matches[1], matches[2]
	return fmt.Sprintf("https://%s/%s/%s/issues/", GitHubDomain, owner, repo), nil
}
