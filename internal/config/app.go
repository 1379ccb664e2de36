package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/log"
)

var _ core.AppConfig = (*AppConfig)(nil)

const (
	SourceStatic = "static"
	SourceSQLite = "sqlite"
)

type AppConfig struct {
	RuntimePath string `env:"TUSKMEM_RUNTIME_PATH" envDefault:".tuskmem"`
	// Backing store for the dashboard: the built-in fixture or the sqlite database
	Source     string `env:"TUSKMEM_SOURCE" envDefault:"static"`
	DateLayout string `env:"TUSKMEM_DATE_LAYOUT" envDefault:"1/2/2006"`
	// IANA zone for absolute dates; empty means the system zone
	Timezone string `env:"TUSKMEM_TIMEZONE"`

	location *time.Location
}

func LoadAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)

	switch c.Source {
	case SourceStatic, SourceSQLite:
	default:
		return nil, fmt.Errorf("unsupported memory source %q", c.Source)
	}

	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return nil, err
	}
	c.location = loc
	return c, nil
}

func loadLocation(name string) (*time.Location, error) {
	// time.LoadLocation treats "" as UTC
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := LoadAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "tuskmem.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "tuskmem.log")
}

func (c AppConfig) GetSourceKind() string {
	return c.Source
}

func (c AppConfig) GetDateLayout() string {
	return c.DateLayout
}

func (c AppConfig) UsesSQLite() bool {
	return c.Source == SourceSQLite
}

func (c AppConfig) GetLocation() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
