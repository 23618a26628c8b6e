//go:build !windows

package launcher

import (
	"os/exec"
	"syscall"
)

// detachProcess configures cmd to run in its own session, detached from
// the controlling terminal of the interactive session.
func detachProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
