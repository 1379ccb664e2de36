package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/ui"
	"github.com/spf13/cobra"
)

var actionCmd = &cobra.Command{
	Use:          "action <map|analytics|refresh>",
	Short:        "Trigger a dashboard action",
	Args:         cobra.ExactArgs(1),
	ValidArgs:    []string{string(core.ActionMap), string(core.ActionAnalytics), string(core.ActionRefresh)},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		action, err := core.ParseAction(args[0])
		if err != nil {
			return err
		}

		app := NewApp(ctx)
		defer app.Close(ctx)

		err = core.RunAction(ctx, app.Actions, action)
		if errors.Is(err, core.ErrNotImplemented) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.FlagStyle.Render(
				fmt.Sprintf("%s: %s (not implemented yet)", action.Title(), action.Description())))
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(actionCmd)
}
