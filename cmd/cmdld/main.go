// Command cmdld is the long-lived daemon that owns the worker pool cmdl
// clients submit commands to.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "cmdld",
		Short: "Local command-execution daemon",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "f", "cmdld.conf", "path to the daemon config file")

	root.AddCommand(startCmd())
	root.AddCommand(stopCmd())
	root.AddCommand(detachedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
