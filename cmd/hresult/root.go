package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configDir string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "hresult",
		Short:         "Decode and look up Windows HRESULT values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configDir, "config", ".", "directory holding hresult.yaml")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(
		newDecodeCmd(),
		newSearchCmd(),
		newFacilityCmd(),
		newExportCmd(),
		newServeCmd(opts),
	)
	return cmd
}
