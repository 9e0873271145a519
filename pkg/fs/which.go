package fs

import "os/exec"

// Which finds the executable path for a command using the system's PATH.
func (f *realFS) Which(command string) (string, error) {
	return exec.LookPath(command)
}
