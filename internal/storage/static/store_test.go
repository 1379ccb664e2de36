package static

import (
	"context"
	"testing"
	"time"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(id string) core.Memory {
	return core.Memory{
		ID:         id,
		Content:    "content " + id,
		Category:   core.CategoryWork,
		Source:     core.SourceManual,
		Timestamp:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Tags:       []string{"t"},
		Importance: 5,
	}
}

func TestStore_ListPreservesOrder(t *testing.T) {
	s, err := NewStore([]core.Memory{sample("b"), sample("a"), sample("c")})
	require.NoError(t, err)

	got, err := s.ListMemories(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
	assert.Equal(t, 3, s.Len())
}

func TestStore_IsReadOnly(t *testing.T) {
	s, err := NewStore([]core.Memory{sample("a")})
	require.NoError(t, err)

	got, _ := s.ListMemories(context.Background())
	got[0].Content = "mutated"
	got[0].Tags[0] = "mutated"
	got[0].Timestamp = time.Now()

	again, _ := s.ListMemories(context.Background())
	assert.Equal(t, sample("a"), again[0])
}

func TestNewStore_RejectsInvalid(t *testing.T) {
	bad := sample("a")
	bad.Category = "hobby"

	_, err := NewStore([]core.Memory{bad})
	assert.ErrorIs(t, err, core.ErrInvalidCategory)

	_, err = NewStore([]core.Memory{sample("a"), sample("a")})
	assert.ErrorIs(t, err, core.ErrInvalidMemory)
}

func TestStore_Empty(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	got, err := s.ListMemories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_CancelledContext(t *testing.T) {
	s, _ := NewStore([]core.Memory{sample("a")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListMemories(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
