package main

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cmdlsh/cmdl/internal/daemonctl"
	"github.com/cmdlsh/cmdl/internal/pidcell"
	"github.com/cmdlsh/cmdl/internal/singleton"
)

func stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "stop",
		Short:         "Stop the running daemon",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := pidcell.Open(daemonctl.ShmPIDName)
			if err != nil {
				return errors.New("no daemon is running")
			}
			defer cell.Close()

			pid := cell.Load()
			if pid == 0 {
				return errors.New("daemon has not finished starting")
			}

			if err := syscall.Kill(int(pid), syscall.SIGTERM); err != nil {
				if errors.Is(err, syscall.ESRCH) {
					return repairGhostLock(pid)
				}
				return fmt.Errorf("failed to stop daemon: %w", err)
			}
			return nil
		},
	}
}

// repairGhostLock handles a daemon that crashed without releasing the
// singleton lock: its PID cell still names a process that no longer
// exists. Releasing the lock here restores it to the available state the
// crashed daemon failed to leave it in.
func repairGhostLock(stalePID int32) error {
	lock, err := singleton.Open(daemonctl.RunMutexName)
	if err != nil {
		return fmt.Errorf("failed to repair stale daemon state: %w", err)
	}
	defer lock.Close()
	lock.Release()
	return fmt.Errorf("daemon process %d is gone; released stale lock", stalePID)
}
