package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/tuskmem/internal/transport/mcp"
	"github.com/sandevgo/tuskmem/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:          "mcp",
	Short:        "Expose memories to MCP clients over stdio",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctx, flushLog, err := setupFileLogger(ctx)
		if err != nil {
			return err
		}
		defer flushLog()

		app := NewApp(ctx)
		server := mcp.NewServer(app.Browser, app.Actions, app.Formatter)

		return srv.Run(ctx, append(app.Services, server), shutdownTimeout)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
