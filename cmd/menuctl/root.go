package main

import (
	"admin-panel/internal/config"
	"admin-panel/internal/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "Inspect admin panel menu files",
		Long:          "Validate and print the menu configuration used by the admin panel shell.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")

	root.AddCommand(newValidateCmd(opts), newTreeCmd(opts))
	return root
}

// menuPath picks the first positional argument or the configured menu file.
func menuPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.FromEnv().MenuPath()
}

func (o *rootOptions) logger(cmd *cobra.Command) logger.Logger {
	return logger.New(logger.Options{
		Level:  o.logLevel,
		Output: cmd.ErrOrStderr(),
	})
}
