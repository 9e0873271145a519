package forge

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// GitLabName is the name identifier for GitLab forge.
	GitLabName = "gitlab"
	// GitLabDomain is the GitLab domain for URL validation.
	GitLabDomain = "gitlab.com"
)

var gitlabHostPattern = hostPattern(GitLabDomain)

// gitlabRemotePattern captures the full project path, subgroups included.
var gitlabRemotePattern = regexp.MustCompile(remoteHostPrefix + `gitlab\.com(?::\d+)?[:/](.+?)(?:\.git)?/?$`)

// GitLab represents the GitLab forge implementation.
type GitLab struct{}

// NewGitLab creates a new GitLab forge instance.
func NewGitLab() *GitLab {
	return &GitLab{}
}

// Name returns the name of the forge.
func (g *GitLab) Name() string {
	return GitLabName
}

// MatchesRemote reports whether the host of the remote URL is gitlab.com.
func (g *GitLab) MatchesRemote(remoteURL string) bool {
	return gitlabHostPattern.MatchString(strings.TrimSpace(remoteURL))
}

// IssueBaseURL builds https://gitlab.com/<group>/<project>/-/issues/ from a remote URL.
func (g *GitLab) IssueBaseURL(remoteURL string) (string, error) {
	matches := gitlabRemotePattern.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if len(matches) != 2 || !strings.Contains(matches[1], "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidRemoteURL, remoteURL)
	}

	return fmt.Sprintf("https://%s/%s/-/issues/", GitLabDomain, matches[1]), nil
}
