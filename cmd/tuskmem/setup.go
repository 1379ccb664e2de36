package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskmem/internal/config"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/internal/storage/sqlite"
	"github.com/sandevgo/tuskmem/internal/storage/static"
	"github.com/sandevgo/tuskmem/pkg/humantime"
	"github.com/sandevgo/tuskmem/pkg/log"
	"github.com/sandevgo/tuskmem/pkg/retry"
	"github.com/sandevgo/tuskmem/pkg/srv"
)

// App bundles what every command needs to browse memories.
type App struct {
	Config    *config.AppConfig
	Browser   *memory.Browser
	Actions   core.DashboardActions
	Formatter *humantime.Formatter

	// released in reverse order by Close or srv.Run
	Services []srv.Service
}

func NewApp(ctx context.Context) *App {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	breakerCfg := config.NewBreakerConfig(ctx)

	formatter := humantime.NewFormatter(appCfg.GetDateLayout())
	formatter.Location = appCfg.GetLocation()

	app := &App{
		Config:    appCfg,
		Actions:   memory.NewStubActions(),
		Formatter: formatter,
	}

	// 2. Storage
	source, err := app.initSource(ctx)
	if err != nil {
		logger.Fatal().Err(err).Str("source", appCfg.GetSourceKind()).Msg("failed to initialize memory source")
	}

	// 3. Browsing
	app.Browser = memory.NewBrowser(ctx, source, breakerCfg)
	return app
}

func (a *App) initSource(ctx context.Context) (core.MemorySource, error) {
	if !a.Config.UsesSQLite() {
		return static.NewStore(memory.Fixture())
	}

	db, err := openDB(ctx, a.Config)
	if err != nil {
		return nil, err
	}
	a.Services = append(a.Services, srv.NewCleanup(db.Close))
	return sqlite.NewMemoriesRepo(db), nil
}

func openDB(ctx context.Context, cfg core.AppConfig) (*sql.DB, error) {
	retrier := retry.NewDefaultRetrier(retry.WithName("sqlite open"))
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath(), retrier)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.GetDatabasePath(), err)
	}
	return db, nil
}

// Close releases storage for commands that do not go through srv.Run.
func (a *App) Close(ctx context.Context) {
	_ = srv.ShutdownServices(ctx, a.Services)
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := config.AppConfig{RuntimePath: runtimePath}.GetEnvPath()

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
