//go:build unit

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vizioz/task-issues/cmd/ti/internal/cli"
	"github.com/vizioz/task-issues/pkg/issue"
	"github.com/vizioz/task-issues/pkg/task"
	"github.com/vizioz/task-issues/pkg/taskissues"
	"github.com/vizioz/task-issues/pkg/taskissues/mocks"
	"go.uber.org/mock/gomock"
)

// run executes ti with args against a mocked TaskIssues and returns stdout and stderr.
func run(t *testing.T, mock *mocks.MockTaskIssues, interactive bool, args ...string) (string, string, error) {
	t.Helper()

	originalNew, originalInteractive, originalClipboard := newTaskIssues, isInteractive, writeClipboard
	originalQuiet := cli.Quiet
	t.Cleanup(func() {
		newTaskIssues, isInteractive, writeClipboard = originalNew, originalInteractive, originalClipboard
		cli.Quiet = originalQuiet
	})

	newTaskIssues = func() (taskissues.TaskIssues, error) { return mock, nil }
	isInteractive = func() bool { return interactive }
	writeClipboard = func(string) error { return errors.New("clipboard not expected") }

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestOpenCmd_Selection(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		interactive bool
		expected    taskissues.OpenParams
	}{
		{
			name:     "text argument",
			args:     []string{"open", "Fix", "login", "#123"},
			expected: taskissues.OpenParams{Text: []string{"Fix", "login", "#123"}, Selection: taskissues.SelectFirst},
		},
		{
			name:        "interactive terminal",
			args:        []string{"open"},
			interactive: true,
			expected:    taskissues.OpenParams{Text: []string{}, Selection: taskissues.SelectInteractive},
		},
		{
			name:        "first flag wins over terminal",
			args:        []string{"open", "--first"},
			interactive: true,
			expected:    taskissues.OpenParams{Text: []string{}, Selection: taskissues.SelectFirst},
		},
		{
			name:     "index is one-based",
			args:     []string{"open", "--index", "3", "--print"},
			expected: taskissues.OpenParams{Text: []string{}, Selection: taskissues.SelectIndex, Index: 2, PrintOnly: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mocks.NewMockTaskIssues(ctrl)

			mock.EXPECT().Open(gomock.Cond(func(p taskissues.OpenParams) bool {
				return len(p.Text) == len(tt.expected.Text) &&
					p.Selection == tt.expected.Selection &&
					p.Index == tt.expected.Index &&
					p.PrintOnly == tt.expected.PrintOnly
			})).Return(taskissues.OpenResult{Found: true, Opened: true, URL: "https://example.com/1"}, nil)

			_, _, err := run(t, mock, tt.interactive, tt.args...)
			assert.NoError(t, err)
		})
	}
}

func TestOpenCmd_InvalidFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)

	_, _, err := run(t, mock, false, "open", "--index", "0")
	assert.ErrorContains(t, err, "tasks are numbered from 1")

	_, _, err = run(t, mock, false, "open", "--index", "2", "--first")
	assert.Error(t, err)
}

func TestOpenCmd_Report(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		result         taskissues.OpenResult
		expectedStdout string
		expectedStderr string
	}{
		{
			name:           "no reference notice",
			args:           []string{"open", "Fix login bug"},
			result:         taskissues.OpenResult{Task: task.Task{Description: "Fix login bug"}},
			expectedStderr: "Task Issues: No issue reference (#number) was found in the selected task.\n",
		},
		{
			name:           "empty task list",
			args:           []string{"open"},
			result:         taskissues.OpenResult{Empty: true},
			expectedStderr: "Task Issues: No task was found.\n",
		},
		{
			name:   "cancelled selection is silent",
			args:   []string{"open"},
			result: taskissues.OpenResult{Cancelled: true},
		},
		{
			name:           "print only",
			args:           []string{"open", "--print", "#7"},
			result:         taskissues.OpenResult{Found: true, URL: "https://github.com/acme/app/issues/7"},
			expectedStdout: "https://github.com/acme/app/issues/7\n",
		},
		{
			name:           "opened is silent",
			args:           []string{"open", "#7"},
			result:         taskissues.OpenResult{Found: true, Opened: true, URL: "https://github.com/acme/app/issues/7"},
			expectedStdout: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mocks.NewMockTaskIssues(ctrl)
			mock.EXPECT().Open(gomock.Any()).Return(tt.result, nil)

			stdout, stderr, err := run(t, mock, false, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStdout, stdout)
			assert.Equal(t, tt.expectedStderr, stderr)
		})
	}
}

func TestOpenCmd_NotOpenedWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().Open(gomock.Any()).
		Return(taskissues.OpenResult{Found: true, URL: "https://github.com/acme/app/issues/7"}, nil)

	_, stderr, err := run(t, mock, false, "open", "#7")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Could not open https://github.com/acme/app/issues/7")
}

func TestOpenCmd_QuietSuppressesNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().Open(gomock.Any()).Return(taskissues.OpenResult{}, nil)

	_, stderr, err := run(t, mock, false, "-q", "open", "no reference")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestOpenCmd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().Open(gomock.Any()).Return(taskissues.OpenResult{}, taskissues.ErrTaskListFailed)

	_, _, err := run(t, mock, false, "open")
	assert.ErrorIs(t, err, taskissues.ErrTaskListFailed)
}

func TestURLCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().ResolveURL("Fix login bug #123").Return("https://github.com/acme/app/issues/123", true, nil)

	stdout, _, err := run(t, mock, false, "url", "Fix", "login", "bug", "#123")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/app/issues/123\n", stdout)
}

func TestURLCmd_NoReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().ResolveURL("no reference").Return("", false, nil)

	stdout, _, err := run(t, mock, false, "url", "no reference")
	assert.ErrorIs(t, err, issue.ErrReferenceNotFound)
	assert.Empty(t, stdout)
}

func TestURLCmd_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().ResolveURL("#5").Return("https://github.com/acme/app/issues/5", true, nil)

	var copied string
	originalClipboard := writeClipboard
	defer func() { writeClipboard = originalClipboard }()

	originalNew := newTaskIssues
	defer func() { newTaskIssues = originalNew }()
	newTaskIssues = func() (taskissues.TaskIssues, error) { return mock, nil }
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"url", "--copy", "#5"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "https://github.com/acme/app/issues/5", copied)
	assert.Contains(t, stderr.String(), "Copied to clipboard.")
}

func TestListCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().List(taskissues.ListParams{All: true}).Return([]taskissues.TaskWithReference{
		{
			Task:      task.Task{Source: task.SourceTypeCode, Description: "// TODO fix #12", File: "a.go", Line: 3},
			Found:     true,
			Reference: issue.Reference(12),
			URL:       "https://github.com/acme/app/issues/12",
		},
		{
			Task: task.Task{Source: task.SourceTypeCode, Description: "// HACK later", File: "b.go", Line: 9},
		},
	}, nil)

	stdout, _, err := run(t, mock, false, "list", "--all")
	require.NoError(t, err)

	assert.Contains(t, stdout, "#12")
	assert.Contains(t, stdout, "a.go:3")
	assert.Contains(t, stdout, "https://github.com/acme/app/issues/12")
	assert.Contains(t, stdout, "b.go:9")
	assert.Contains(t, stdout, "// HACK later")
}

func TestListCmd_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().List(taskissues.ListParams{}).Return(nil, nil)

	stdout, stderr, err := run(t, mock, false, "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "Task Issues: No task was found.\n", stderr)
}

func TestInitCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().Init(taskissues.InitParams{
		BaseURL: "https://github.com/acme/app/issues/",
		Browser: "firefox",
		Force:   true,
	}).Return(nil)

	_, stderr, err := run(t, mock, false,
		"init", "--base-url", "https://github.com/acme/app/issues/", "--browser", "firefox", "--force")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Configuration written to")
}

func TestInitCmd_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().Init(taskissues.InitParams{Interactive: true}).Return(taskissues.ErrInitCancelled)

	_, stderr, err := run(t, mock, true, "init")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Configuration left unchanged.")
}

func TestInitCmd_AlreadyInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockTaskIssues(ctrl)
	mock.EXPECT().Init(gomock.Any()).Return(taskissues.ErrAlreadyInitialized)

	_, _, err := run(t, mock, false, "init")
	assert.ErrorIs(t, err, taskissues.ErrAlreadyInitialized)
}
