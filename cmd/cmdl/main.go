// Command cmdl submits a single shell command to a running cmdld daemon,
// streams its output to stdout, and exits with the command's verdict.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmdlsh/cmdl/internal/client"
)

func main() {
	root := &cobra.Command{
		Use:           "cmdl <command>",
		Short:         "Run a shell command on the local cmdld daemon",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0])
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	d := client.New(command, os.Stdout)
	err := d.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, client.ErrDaemonUnreachable):
		return errors.New("failed to reach daemon")
	case errors.Is(err, client.ErrNoWorkerAvailable):
		return errors.New("no worker available, request aborted")
	case errors.Is(err, client.ErrRequestFailed):
		return errors.New("request failed")
	default:
		return err
	}
}
