package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tuskmem/pkg/log"
)

// BreakerConfig tunes the circuit breaker guarding the memory source.
type BreakerConfig struct {
	MaxRequests  uint32        `env:"TUSKMEM_BREAKER_MAX_REQUESTS" envDefault:"5"`
	Interval     time.Duration `env:"TUSKMEM_BREAKER_INTERVAL" envDefault:"30s"`
	Timeout      time.Duration `env:"TUSKMEM_BREAKER_TIMEOUT" envDefault:"60s"`
	MinRequests  uint32        `env:"TUSKMEM_BREAKER_MIN_REQUESTS" envDefault:"5"`
	FailureRatio float64       `env:"TUSKMEM_BREAKER_FAILURE_RATIO" envDefault:"0.8"`
}

func LoadBreakerConfig() (*BreakerConfig, error) {
	c := &BreakerConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func NewBreakerConfig(ctx context.Context) *BreakerConfig {
	c, err := LoadBreakerConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Breaker config")
	}
	return c
}
