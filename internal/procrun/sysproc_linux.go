//go:build linux

package procrun

import (
	"os/exec"
	"syscall"
)

// configureSysProcAttr ties the child's life to its worker: if the worker
// process dies without stopping the child first, the kernel delivers
// SIGTERM to it.
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Pdeathsig: syscall.SIGTERM}
}
