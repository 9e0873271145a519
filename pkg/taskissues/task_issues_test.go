//go:build unit

package taskissues

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vizioz/task-issues/pkg/config"
	configmocks "github.com/vizioz/task-issues/pkg/config/mocks"
	"github.com/vizioz/task-issues/pkg/dependencies"
	"github.com/vizioz/task-issues/pkg/forge"
	fsmocks "github.com/vizioz/task-issues/pkg/fs/mocks"
	gitmocks "github.com/vizioz/task-issues/pkg/git/mocks"
	"github.com/vizioz/task-issues/pkg/logger"
	openermocks "github.com/vizioz/task-issues/pkg/opener/mocks"
	promptmocks "github.com/vizioz/task-issues/pkg/prompt/mocks"
	"go.uber.org/mock/gomock"
)

const repoPath = "/work/app"

var errNoRemote = errors.New("remote origin not found")

type testMocks struct {
	fs     *fsmocks.MockFS
	git    *gitmocks.MockGit
	config *configmocks.MockManager
	prompt *promptmocks.MockPrompter
	opener *openermocks.MockURIOpener
}

func newTestTaskIssues(t *testing.T) (TaskIssues, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		fs:     fsmocks.NewMockFS(ctrl),
		git:    gitmocks.NewMockGit(ctrl),
		config: configmocks.NewMockManager(ctrl),
		prompt: promptmocks.NewMockPrompter(ctrl),
		opener: openermocks.NewMockURIOpener(ctrl),
	}

	deps := dependencies.New().
		WithFS(m.fs).
		WithGit(m.git).
		WithConfig(m.config).
		WithPrompt(m.prompt).
		WithForge(forge.NewManager(logger.NewNoopLogger())).
		WithOpener(m.opener)

	ti, err := NewTaskIssues(NewTaskIssuesParams{Dependencies: deps, RepoPath: repoPath})
	require.NoError(t, err)

	return ti, m
}

func defaultConfig() config.Config {
	return config.Config{
		Remote:      config.DefaultRemote,
		LaunchGrace: config.DefaultLaunchGrace,
		Markers:     []string{"TODO", "FIXME", "HACK"},
	}
}

func TestNewTaskIssues_InvalidDependencies(t *testing.T) {
	_, err := NewTaskIssues(NewTaskIssuesParams{Dependencies: dependencies.New()})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		baseURL   string
		remoteURL string
		remoteErr error
		expected  string
	}{
		{
			name:     "configured base url wins",
			baseURL:  "https://tracker.example.com/browse/",
			expected: "https://tracker.example.com/browse/",
		},
		{
			name:      "derived from github ssh remote",
			remoteURL: "git@github.com:acme/app.git",
			expected:  "https://github.com/acme/app/issues/",
		},
		{
			name:      "derived from gitlab remote",
			remoteURL: "https://gitlab.com/group/sub/app.git",
			expected:  "https://gitlab.com/group/sub/app/-/issues/",
		},
		{
			name:      "gitlab project named after github",
			remoteURL: "https://gitlab.com/github.com-mirror/x.git",
			expected:  "https://gitlab.com/github.com-mirror/x/-/issues/",
		},
		{
			name:      "unsupported forge falls back to default",
			remoteURL: "https://bitbucket.org/acme/app.git",
			expected:  config.DefaultBaseURL,
		},
		{
			name:      "missing remote falls back to default",
			remoteErr: errNoRemote,
			expected:  config.DefaultBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti, m := newTestTaskIssues(t)

			cfg := defaultConfig()
			cfg.BaseURL = tt.baseURL
			if tt.baseURL == "" {
				m.git.EXPECT().GetRemoteURL(repoPath, "origin").Return(tt.remoteURL, tt.remoteErr)
			}

			assert.Equal(t, tt.expected, ti.(*realTaskIssues).resolveBaseURL(cfg))
		})
	}
}

func TestResolveURL(t *testing.T) {
	ti, m := newTestTaskIssues(t)

	m.config.EXPECT().GetConfigWithFallback().Return(defaultConfig(), nil)
	m.git.EXPECT().GetRemoteURL(repoPath, "origin").Return("https://github.com/acme/app", nil)

	url, found, err := ti.ResolveURL("Fix login bug #123")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "https://github.com/acme/app/issues/123", url)
}

func TestResolveURL_NoReference(t *testing.T) {
	ti, _ := newTestTaskIssues(t)

	// Neither the configuration nor the remote is read
	url, found, err := ti.ResolveURL("Fix login bug")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, url)
}

func TestSetLogger(t *testing.T) {
	ti, _ := newTestTaskIssues(t)
	l := logger.NewNoopLogger()

	ti.SetLogger(l)

	assert.Equal(t, l, ti.(*realTaskIssues).deps.Logger)
}

func TestSetLogger_ReachesForgeResolution(t *testing.T) {
	ti, m := newTestTaskIssues(t)
	var out bytes.Buffer

	ti.SetLogger(logger.NewWriterLogger(&out, "ti: "))

	m.git.EXPECT().GetRemoteURL(repoPath, "origin").Return("git@github.com:acme/app.git", nil)
	ti.(*realTaskIssues).resolveBaseURL(defaultConfig())

	assert.Contains(t, out.String(), "ti: Remote git@github.com:acme/app.git is hosted on github, issues at https://github.com/acme/app/issues/")
	assert.Contains(t, out.String(), "ti: Derived base URL https://github.com/acme/app/issues/")
}
