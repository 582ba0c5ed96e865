package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cmdlsh/cmdl/internal/daemonctl"
)

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "start",
		Short:         "Start the daemon in the background",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return daemonctl.Start(os.Args[0], []string{"--config", configPath})
		},
	}
}
