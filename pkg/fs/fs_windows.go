//go:build windows

package fs

import (
	"os/exec"
	"syscall"
)

// detach starts the child in a new process group so that Ctrl+C sent to ti
// does not reach the launched browser.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}
