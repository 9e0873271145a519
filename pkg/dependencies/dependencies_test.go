//go:build unit

package dependencies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vizioz/task-issues/pkg/config"
	"github.com/vizioz/task-issues/pkg/logger"
	"github.com/vizioz/task-issues/pkg/opener"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.Forge)

	// Configuration-bound dependencies are left unset
	assert.Nil(t, deps.Config)
	assert.Nil(t, deps.Opener)

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestDependencies_Fluent(t *testing.T) {
	deps := New()
	cfg := config.NewManager(deps.FS, "~/.ti/config.yaml")
	l := logger.NewNoopLogger()
	o := opener.NewOpener(opener.NewOpenerParams{})

	result := deps.WithConfig(cfg).WithLogger(l).WithOpener(o)

	assert.Same(t, deps, result)
	assert.Equal(t, cfg, deps.Config)
	assert.Equal(t, l, deps.Logger)
	assert.Equal(t, o, deps.Opener)
	assert.NoError(t, deps.Validate())
}

func TestDependencies_Validate_Missing(t *testing.T) {
	testCases := []struct {
		name     string
		setup    func(deps *Dependencies)
		expected error
	}{
		{name: "FS missing", setup: func(deps *Dependencies) { deps.FS = nil }, expected: ErrFSMissing},
		{name: "Git missing", setup: func(deps *Dependencies) { deps.Git = nil }, expected: ErrGitMissing},
		{name: "Logger missing", setup: func(deps *Dependencies) { deps.Logger = nil }, expected: ErrLoggerMissing},
		{name: "Prompt missing", setup: func(deps *Dependencies) { deps.Prompt = nil }, expected: ErrPromptMissing},
		{name: "Forge missing", setup: func(deps *Dependencies) { deps.Forge = nil }, expected: ErrForgeMissing},
		{name: "Opener is optional", setup: func(deps *Dependencies) { deps.Opener = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := New().WithConfig(config.NewManager(nil, "config.yaml"))
			tc.setup(deps)

			err := deps.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

// Validation stops at the first missing dependency
func TestDependencies_ValidationOrder(t *testing.T) {
	err := (&Dependencies{}).Validate()

	assert.ErrorIs(t, err, ErrFSMissing)
	assert.NotErrorIs(t, err, ErrConfigMissing)
}
