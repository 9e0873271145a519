package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Grep executes `git grep` with an extended regular expression.
// Output fields are NUL separated (-z) so that paths holding colons stay intact.
func (g *realGit) Grep(repoPath, pattern string) (string, error) {
	cmd := exec.Command("git", "grep", "-z", "--line-number", "-I", "--no-color", "--untracked", "-E", pattern)
	cmd.Dir = repoPath

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && stderr.Len() == 0 {
			// git grep uses exit code 1 when no matches are found
			return "", nil
		}
		return "", fmt.Errorf("%w: %w (output: %s)", ErrGrepFailed, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
