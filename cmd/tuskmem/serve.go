package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sandevgo/tuskmem/internal/config"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/transport/rest"
	"github.com/sandevgo/tuskmem/pkg/log"
	"github.com/sandevgo/tuskmem/pkg/srv"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Serve the memory listing over HTTP",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctx, flushLog := setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting tuskmem api")

		app := NewApp(ctx)
		serverCfg := config.NewServerConfig(ctx)

		var metrics *rest.Metrics
		if serverCfg.MetricsEnabled {
			metrics = rest.NewMetrics(core.AppName)
		}

		handler := rest.NewRouter(ctx, rest.Deps{
			Browser:     app.Browser,
			Actions:     app.Actions,
			Formatter:   app.Formatter,
			CORSOrigins: serverCfg.CORSOrigins,
			Metrics:     metrics,
		})

		services := append(app.Services, rest.NewServer(serverCfg, handler))
		if err := srv.Run(ctx, services, shutdownTimeout); err != nil {
			return err
		}

		logger.Info().Msg("tuskmem api has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
