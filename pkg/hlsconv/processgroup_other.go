//go:build !windows
// +build !windows

package hlsconv

import (
	"os/exec"
	"syscall"
)

// configureProcessGroup makes cancellation kill the transcoder together
// with every process it spawned.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		pgid, err := syscall.Getpgid(cmd.Process.Pid)
		if err != nil {
			return cmd.Process.Kill()
		}
		return syscall.Kill(-pgid, syscall.SIGKILL)
	}
}
