package main

import (
	"github.com/sandevgo/tuskmem/internal/transport/tui"
	"github.com/sandevgo/tuskmem/pkg/log"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:          "browse",
	Short:        "Open the interactive memory dashboard",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog, err := setupFileLogger(cmd.Context())
		if err != nil {
			return err
		}
		defer flushLog()

		app := NewApp(ctx)
		defer app.Close(ctx)

		log.FromCtx(ctx).Info().Str("source", app.Config.GetSourceKind()).Msg("opening dashboard")
		return tui.Run(ctx, app.Browser, app.Actions, tui.Options{
			Formatter: app.Formatter,
			Debug:     isDebug(),
		})
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
