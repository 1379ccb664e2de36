package static

import (
	"context"
	"fmt"

	"github.com/sandevgo/tuskmem/internal/core"
)

var _ core.MemorySource = (*Store)(nil)

// Store is a read-only, ordered set of memories fixed at construction.
type Store struct {
	memories []core.Memory
}

func NewStore(memories []core.Memory) (*Store, error) {
	seen := make(map[string]struct{}, len(memories))
	stored := make([]core.Memory, 0, len(memories))

	for _, m := range memories {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", core.ErrInvalidMemory, m.ID)
		}
		seen[m.ID] = struct{}{}
		stored = append(stored, m.Clone())
	}

	return &Store{memories: stored}, nil
}

// ListMemories returns copies so callers can't mutate the store.
func (s *Store) ListMemories(ctx context.Context) ([]core.Memory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]core.Memory, len(s.memories))
	for i, m := range s.memories {
		res[i] = m.Clone()
	}
	return res, nil
}

func (s *Store) Len() int {
	return len(s.memories)
}
