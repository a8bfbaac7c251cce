//go:build windows
// +build windows

package hlsconv

import (
	"os/exec"
	"strconv"
	"syscall"
)

// configureProcessGroup makes cancellation kill the transcoder together
// with every process it spawned.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
	cmd.Cancel = func() error {
		// taskkill /T terminates the whole process tree
		return exec.Command("TASKKILL", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid)).Run()
	}
}
