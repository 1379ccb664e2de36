package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// Options controls where and how verbosely the process logs.
type Options struct {
	Debug bool
	// FilePath redirects logs to a file. Used when stdout belongs to a TUI or
	// a stdio protocol.
	FilePath string
}

func NewContextWithLogger(ctx context.Context, debug bool) (context.Context, func()) {
	ctx, cleanup, err := NewContextWithOptions(ctx, Options{Debug: debug})
	if err != nil {
		// stdout never fails to open
		panic(err)
	}
	return ctx, cleanup
}

func NewContextWithOptions(ctx context.Context, opts Options) (context.Context, func(), error) {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return ""
	}

	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var (
		out     io.Writer = os.Stdout
		closeFn           = func() error { return nil }
		noColor bool
	)
	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0755); err != nil {
			return ctx, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return ctx, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closeFn, noColor = f, f.Close, true
	}

	// Non-blocking ring buffer in front of the real writer
	wr := diode.NewWriter(out, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "Logger Dropped %d messages\n", missed)
	})

	output := zerolog.ConsoleWriter{
		Out:        wr,
		NoColor:    noColor,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		CallerWithSkipFrameCount(2).
		Logger()

	log.Logger = logger

	return log.With().Logger().WithContext(ctx), func() {
		wr.Close()
		_ = closeFn()
	}, nil
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
