// Command wcsim runs the Wilson-Cowan excitable medium without a window and
// exports the recorded history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wcsim",
		Short: "Wilson-Cowan excitable medium simulator",
		Long: `wcsim simulates a grid of excitable cells that fire spontaneously or
when enough neighbours fired on the previous step, then rest for a
refractory period.

Parameters come from defaults, an optional YAML file (--config), a .env
file, WC_* environment variables and finally command line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newNeighborsCmd(),
		newSweepCmd(),
	)
	return rootCmd
}
