package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tuskmem/pkg/log"
)

type ServerConfig struct {
	Addr           string   `env:"TUSKMEM_HTTP_ADDR" envDefault:":8090"`
	CORSOrigins    []string `env:"TUSKMEM_CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	MetricsEnabled bool     `env:"TUSKMEM_METRICS_ENABLED" envDefault:"true"`
}

func LoadServerConfig() (*ServerConfig, error) {
	c := &ServerConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func NewServerConfig(ctx context.Context) *ServerConfig {
	c, err := LoadServerConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Server config")
	}
	return c
}
