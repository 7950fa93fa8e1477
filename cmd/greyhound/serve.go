package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/greyhound/greyhound/pkg/config"
	"github.com/greyhound/greyhound/pkg/httpserver"
	"github.com/greyhound/greyhound/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			var httpCfg httpserver.Config
			if err := config.Load(&httpCfg); err != nil {
				return err
			}
			if addr != "" {
				httpCfg.Addr = addr
			}

			log := newLogger(cfg)
			logger.SetAsDefault(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, cfg, log)
			if err != nil {
				log.ErrorContext(ctx, "startup failed", logger.Error(err))
				return err
			}
			defer a.close()

			srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
			return srv.Run(ctx, a.handler)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}
