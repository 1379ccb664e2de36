package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskmem/internal/config"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/internal/storage/sqlite"
	"github.com/sandevgo/tuskmem/pkg/env"
	"github.com/sandevgo/tuskmem/pkg/log"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create the runtime directory and seed the sqlite store",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg, err := config.LoadAppConfig()
		if err != nil {
			return err
		}
		serverCfg, err := config.LoadServerConfig()
		if err != nil {
			return err
		}
		breakerCfg, err := config.LoadBreakerConfig()
		if err != nil {
			return err
		}

		// Seeded store becomes the default source
		appCfg.Source = config.SourceSQLite

		if err := os.MkdirAll(appCfg.GetRuntimePath(), 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		kept, err := writeEnv(appCfg.GetEnvPath(), initForce, appCfg, serverCfg, breakerCfg)
		if err != nil {
			return err
		}
		if kept {
			logger.Info().Str("path", appCfg.GetEnvPath()).
				Msgf("kept existing .env, switched TUSKMEM_SOURCE to %s (use --force to rewrite it)", config.SourceSQLite)
		}

		db, err := openDB(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := memory.Seed(ctx, sqlite.NewMemoriesRepo(db), memory.Fixture())
		if err != nil {
			return err
		}

		logger.Info().Msgf("initialized runtime directory at: %s", appCfg.GetRuntimePath())
		logger.Info().Int("memories", n).Msgf("Initialization complete! You can now run '%s browse'.", cmd.Root().Name())
		return nil
	},
}

// writeEnv renders configs into path. Without force an existing file is kept
// and only its TUSKMEM_SOURCE is switched to sqlite; kept reports that case.
func writeEnv(path string, force bool, configs ...any) (kept bool, err error) {
	if _, err := os.Stat(path); err == nil && !force {
		return true, setEnvKeys(path, map[string]string{"TUSKMEM_SOURCE": config.SourceSQLite})
	}

	content, err := env.MarshalEnv(configs...)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return false, nil
}

func setEnvKeys(path string, set map[string]string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	for k, v := range set {
		vars[k] = v
	}
	if err := godotenv.Write(vars, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return os.Chmod(path, 0600)
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing .env")
	rootCmd.AddCommand(initCmd)
}
