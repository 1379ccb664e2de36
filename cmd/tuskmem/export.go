package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/export"
	"github.com/sandevgo/tuskmem/pkg/log"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	format   string
	search   string
	category string
	output   string
}

var exportCmd = &cobra.Command{
	Use:          "export",
	Short:        "Write the filtered memories as json, yaml, markdown, html or text",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		format, err := export.ParseFormat(exportFlags.format)
		if err != nil {
			return err
		}
		state, err := core.NewFilterState(exportFlags.search, exportFlags.category)
		if err != nil {
			return err
		}

		app := NewApp(ctx)
		defer app.Close(ctx)

		memories, err := app.Browser.List(ctx, state)
		if err != nil {
			return err
		}

		write := func(w io.Writer) error {
			return export.NewExporter(app.Formatter).Write(w, format, state, memories)
		}

		if exportFlags.output == "" || exportFlags.output == "-" {
			return write(cmd.OutOrStdout())
		}

		f, err := os.Create(exportFlags.output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportFlags.output, err)
		}
		if err := writeAndClose(f, write); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportFlags.output, err)
		}

		log.FromCtx(ctx).Info().Int("count", len(memories)).Str("path", exportFlags.output).Msg("memories exported")
		return nil
	},
}

// writeAndClose runs write against wc and always closes it. A close failure
// is reported even when write succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	werr := write(wc)
	if cerr := wc.Close(); cerr != nil {
		return errors.Join(werr, fmt.Errorf("close: %w", cerr))
	}
	return werr
}

func init() {
	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}

	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", string(export.FormatMarkdown), strings.Join(formats, ", "))
	exportCmd.Flags().StringVarP(&exportFlags.search, "search", "s", "", "case-insensitive substring of content or tags")
	exportCmd.Flags().StringVarP(&exportFlags.category, "category", "c", "all", "all, personal, work, learning, project or insight")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "", "output file, stdout when empty")
	rootCmd.AddCommand(exportCmd)
}
