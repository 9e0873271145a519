package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ to user's home directory.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}
