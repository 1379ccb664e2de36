package memory

import (
	"context"
	"fmt"

	"github.com/sandevgo/tuskmem/internal/config"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/log"
	"github.com/sony/gobreaker"
)

// Browser serves filtered views over a memory source. Source failures, and
// calls rejected while the breaker is open, surface as core.ErrSourceUnavailable.
type Browser struct {
	source  core.MemorySource
	breaker *gobreaker.CircuitBreaker
}

func NewBrowser(ctx context.Context, source core.MemorySource, cfg *config.BreakerConfig) *Browser {
	logger := log.FromCtx(ctx)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "memory-source",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &Browser{
		source:  source,
		breaker: breaker,
	}
}

// List loads the source and applies the filter.
func (b *Browser) List(ctx context.Context, state core.FilterState) ([]core.Memory, error) {
	all, err := b.All(ctx)
	if err != nil {
		return nil, err
	}

	visible := Filter(all, state)
	log.FromCtx(ctx).Debug().
		Int("total", len(all)).
		Int("visible", len(visible)).
		Str("search", state.Search).
		Str("category", state.Category.String()).
		Msg("memories filtered")
	return visible, nil
}

// All returns every memory of the source in store order.
func (b *Browser) All(ctx context.Context) ([]core.Memory, error) {
	res, err := b.breaker.Execute(func() (interface{}, error) {
		return b.source.ListMemories(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrSourceUnavailable, err)
	}

	memories, _ := res.([]core.Memory)
	if memories == nil {
		memories = []core.Memory{}
	}
	return memories, nil
}

// Ping reports whether the source can currently be read.
func (b *Browser) Ping(ctx context.Context) error {
	_, err := b.All(ctx)
	return err
}
