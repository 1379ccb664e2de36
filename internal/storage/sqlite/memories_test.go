package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "tuskmem.db")

	db, err := NewDB(context.Background(), path, retry.NewRetrier(&retry.Config{MaxRetries: 0}))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func memoryFixture(id string, at time.Time) core.Memory {
	return core.Memory{
		ID:         id,
		Content:    "memory " + id,
		Category:   core.CategoryInsight,
		Source:     core.SourceChatGPT,
		Timestamp:  at,
		Tags:       []string{"go", "sqlite", "go"},
		Importance: 7,
	}
}

func TestMemoriesRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoriesRepo(newTestDB(t))

	at := time.Date(2025, 6, 21, 18, 0, 0, 123000000, time.UTC)
	want := memoryFixture("a", at)
	require.NoError(t, repo.SaveMemory(ctx, want))

	got, err := repo.ListMemories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, want.ID, got[0].ID)
	assert.Equal(t, want.Content, got[0].Content)
	assert.Equal(t, want.Category, got[0].Category)
	assert.Equal(t, want.Source, got[0].Source)
	assert.Equal(t, want.Tags, got[0].Tags)
	assert.Equal(t, want.Importance, got[0].Importance)
	assert.True(t, want.Timestamp.Equal(got[0].Timestamp))
}

func TestMemoriesRepo_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoriesRepo(newTestDB(t))
	now := time.Now().UTC()

	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, repo.SaveMemory(ctx, memoryFixture(id, now)))
	}

	got, err := repo.ListMemories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "z", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "m", got[2].ID)
}

func TestMemoriesRepo_UpsertKeepsTimestampAndPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoriesRepo(newTestDB(t))
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveMemory(ctx, memoryFixture("a", first)))
	require.NoError(t, repo.SaveMemory(ctx, memoryFixture("b", first)))

	updated := memoryFixture("a", first.Add(48*time.Hour))
	updated.Content = "rewritten"
	updated.Importance = 2
	require.NoError(t, repo.SaveMemory(ctx, updated))

	got, err := repo.ListMemories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "rewritten", got[0].Content)
	assert.Equal(t, 2, got[0].Importance)
	assert.True(t, first.Equal(got[0].Timestamp), "timestamp must not change on update")

	n, err := repo.CountMemories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemoriesRepo_SaveRejectsInvalid(t *testing.T) {
	repo := NewMemoriesRepo(newTestDB(t))

	bad := memoryFixture("a", time.Now())
	bad.Importance = 11

	err := repo.SaveMemory(context.Background(), bad)
	assert.ErrorIs(t, err, core.ErrInvalidImportance)
}

func TestMemoriesRepo_SkipsMalformedRows(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewMemoriesRepo(db)

	require.NoError(t, repo.SaveMemory(ctx, memoryFixture("good", time.Now())))
	_, err := db.ExecContext(ctx,
		`INSERT INTO memories (id, position, content, category, source, tags, importance, recorded_at)
		 VALUES ('bad', 99, 'x', 'hobby', 'manual', '[]', 1, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	got, err := repo.ListMemories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)
}

func TestMemoriesRepo_EmptyStore(t *testing.T) {
	repo := NewMemoriesRepo(newTestDB(t))

	got, err := repo.ListMemories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoriesRepo_ClosedDB(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemoriesRepo(db)
	require.NoError(t, db.Close())

	_, err := repo.ListMemories(context.Background())
	assert.Error(t, err)
}

func TestNewDB_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tuskmem.db")
	noRetry := retry.NewRetrier(&retry.Config{MaxRetries: 0})

	db, err := NewDB(ctx, path, noRetry)
	require.NoError(t, err)
	require.NoError(t, NewMemoriesRepo(db).SaveMemory(ctx, memoryFixture("a", time.Now())))
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, path, noRetry)
	require.NoError(t, err)
	defer db.Close()

	n, err := NewMemoriesRepo(db).CountMemories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
