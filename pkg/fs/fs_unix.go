//go:build unix

package fs

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own process group so that a terminal
// interrupt sent to ti does not reach the launched browser.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
