package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cmdlsh/cmdl/internal/config"
	"github.com/cmdlsh/cmdl/internal/daemonctl"
	"github.com/cmdlsh/cmdl/internal/logging"
)

// detachedCmd is the hidden subcommand daemonctl.Start re-execs into. It is
// never invoked directly by a user; it is the body of the detached process
// equivalent to the original daemon's post-fork child.
func detachedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    daemonctl.DetachedFlag,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetached()
		},
	}
	return cmd
}

func runDetached() error {
	handshake := os.NewFile(3, "handshake")

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}

	if err := os.Chdir("/"); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	if err := redirectStdioToDevNull(); err != nil {
		return fmt.Errorf("redirect stdio: %w", err)
	}

	log := logging.Logger()

	lock, acquired, err := daemonctl.Acquire()
	if err != nil {
		handshake.Close()
		return err
	}
	if !acquired {
		_ = daemonctl.SignalBusy(handshake)
		handshake.Close()
		return nil
	}

	d, err := daemonctl.Bootstrap(lock, cfg, log)
	if err != nil {
		handshake.Close()
		return err
	}

	if err := daemonctl.SignalReady(handshake); err != nil {
		log.Warn().Err(err).Msg("failed to signal readiness to parent")
	}
	handshake.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	runErr := d.Run(ctx)
	if shutdownErr := d.Shutdown(); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("shutdown reported errors")
	}
	return runErr
}

func redirectStdioToDevNull() error {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer devNull.Close()

	for _, fd := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if err := syscall.Dup2(int(devNull.Fd()), int(fd.Fd())); err != nil {
			return err
		}
	}
	return nil
}
