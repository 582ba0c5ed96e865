//go:build !linux

package procrun

import "os/exec"

// configureSysProcAttr is a no-op on platforms without Pdeathsig support.
func configureSysProcAttr(cmd *exec.Cmd) {}
