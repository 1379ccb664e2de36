package main

import (
	"encoding/json"
	"fmt"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/internal/service/ui"
	"github.com/spf13/cobra"
)

var listFlags struct {
	search   string
	category string
	json     bool
}

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "Print memories matching a search and category",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		state, err := core.NewFilterState(listFlags.search, listFlags.category)
		if err != nil {
			return err
		}

		app := NewApp(ctx)
		defer app.Close(ctx)

		memories, err := app.Browser.List(ctx, state)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listFlags.json {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(memory.Entries(memories, app.Formatter))
		}

		fmt.Fprintln(out, ui.TitleStyle.Render(core.AppTitle))
		if len(memories) == 0 {
			fmt.Fprintln(out, ui.EmptyState())
			return nil
		}
		for _, m := range memories {
			fmt.Fprintln(out, ui.MemoryRow(m, app.Formatter.Format(m.Timestamp), 0, false))
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, ui.UsageStyle.Render(ui.FoundLine(len(memories))))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.search, "search", "s", "", "case-insensitive substring of content or tags")
	listCmd.Flags().StringVarP(&listFlags.category, "category", "c", "all", "all, personal, work, learning, project or insight")
	listCmd.Flags().BoolVar(&listFlags.json, "json", false, "print JSON instead of styled text")
	rootCmd.AddCommand(listCmd)
}
