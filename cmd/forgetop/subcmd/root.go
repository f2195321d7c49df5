// Package subcmd holds the forgetop command tree. The bare command starts
// the TUI; subcommands run one-shot queries and actions for scripting.
package subcmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/forgeline/forgetop/internal/app"
)

var rootFlags struct {
	configPath string
	prefsPath  string
	pollEvery  int
	verbose    bool
}

// RootCmd is the forgetop entry point.
var RootCmd = &cobra.Command{
	Use:           "forgetop",
	Short:         "Terminal console for the Forgeline manufacturing server",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return app.Run(ctx, app.Options{
			ConfigPath: rootFlags.configPath,
			PrefsPath:  rootFlags.prefsPath,
			PollEvery:  rootFlags.pollEvery,
			Verbose:    rootFlags.verbose,
		})
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", "", "path to config file")
	RootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "verbose logging")
	RootCmd.Flags().StringVar(&rootFlags.prefsPath, "prefs", "", "path to preferences file")
	RootCmd.Flags().IntVar(&rootFlags.pollEvery, "poll", 0, "status poll interval in seconds")
}
