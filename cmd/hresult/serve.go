package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cloudsoda/go-hresult/internal/config"
	"github.com/cloudsoda/go-hresult/internal/httpapi"
	"github.com/cloudsoda/go-hresult/internal/logger"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HRESULT lookup API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigPath: opts.configDir})
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}

			l, logFile, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer logFile.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return httpapi.Serve(ctx, cfg.Server, l)
		},
	}
}
