package memory

import (
	"context"
	"fmt"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/log"
)

// Seed writes memories into repo. Saving is an upsert keyed by ID, so seeding
// twice leaves a single copy of every record.
func Seed(ctx context.Context, repo core.MemoryRepository, memories []core.Memory) (int, error) {
	for _, m := range memories {
		if err := m.Validate(); err != nil {
			return 0, fmt.Errorf("seed memory %q: %w", m.ID, err)
		}
	}

	for i, m := range memories {
		if err := repo.SaveMemory(ctx, m); err != nil {
			return i, fmt.Errorf("save memory %q: %w", m.ID, err)
		}
	}

	total, err := repo.CountMemories(ctx)
	if err != nil {
		return len(memories), fmt.Errorf("count memories: %w", err)
	}

	log.FromCtx(ctx).Info().Int("seeded", len(memories)).Int("total", total).Msg("memory store seeded")
	return len(memories), nil
}
