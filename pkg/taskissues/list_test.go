//go:build unit

package taskissues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestList(t *testing.T) {
	tests := []struct {
		name         string
		all          bool
		expectedURLs []string
	}{
		{
			name:         "referenced tasks only",
			expectedURLs: []string{"https://github.com/acme/app/issues/123", "https://github.com/acme/app/issues/9"},
		},
		{
			name:         "all tasks",
			all:          true,
			expectedURLs: []string{"https://github.com/acme/app/issues/123", "", "https://github.com/acme/app/issues/9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti, m := newTestTaskIssues(t)

			m.config.EXPECT().GetConfigWithFallback().Return(defaultConfig(), nil)
			m.git.EXPECT().Grep(repoPath, gomock.Any()).Return(grepOutput, nil)
			// The base URL is resolved once
			m.git.EXPECT().GetRemoteURL(repoPath, "origin").Return("git@github.com:acme/app.git", nil).Times(1)

			items, err := ti.List(ListParams{All: tt.all})
			require.NoError(t, err)

			urls := make([]string, 0, len(items))
			for _, item := range items {
				urls = append(urls, item.URL)
				assert.Equal(t, item.URL != "", item.Found)
			}
			assert.Equal(t, tt.expectedURLs, urls)
		})
	}
}

func TestList_NoReferenceSkipsRemote(t *testing.T) {
	ti, m := newTestTaskIssues(t)

	m.config.EXPECT().GetConfigWithFallback().Return(defaultConfig(), nil)
	m.git.EXPECT().Grep(repoPath, gomock.Any()).Return("a.go\x001\x00// TODO tidy up\n", nil)

	items, err := ti.List(ListParams{All: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Found)
	assert.Equal(t, "// TODO tidy up", items[0].Task.Description)
}
