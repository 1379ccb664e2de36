package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/tuskmem/internal/config"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	memories []core.Memory
	err      error
	calls    int
}

func (f *fakeSource) ListMemories(ctx context.Context) ([]core.Memory, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.memories, nil
}

func testBreakerConfig() *config.BreakerConfig {
	return &config.BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  2,
		FailureRatio: 1,
	}
}

func TestBrowser_List(t *testing.T) {
	ctx := context.Background()
	b := NewBrowser(ctx, &fakeSource{memories: Fixture()}, testBreakerConfig())

	got, err := b.List(ctx, core.FilterState{Search: "react", Category: core.CategoryAll})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4"}, ids(got))

	got, err = b.List(ctx, core.FilterState{Search: "nonexistent-xyz"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBrowser_All_EmptySource(t *testing.T) {
	ctx := context.Background()
	b := NewBrowser(ctx, &fakeSource{}, testBreakerConfig())

	got, err := b.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBrowser_SourceUnavailable(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("database is locked")
	src := &fakeSource{err: dbErr}
	b := NewBrowser(ctx, src, testBreakerConfig())

	_, err := b.List(ctx, core.DefaultFilterState())
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
	assert.ErrorIs(t, err, dbErr)

	assert.ErrorIs(t, b.Ping(ctx), core.ErrSourceUnavailable)
	assert.Equal(t, 2, src.calls)

	// breaker is open now: the source is not consulted any more
	src.err = nil
	src.memories = Fixture()
	_, err = b.List(ctx, core.DefaultFilterState())
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
	assert.Equal(t, 2, src.calls)
}
