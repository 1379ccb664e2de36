package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/log"
)

var _ core.MemoryRepository = (*MemoriesRepo)(nil)

type MemoriesRepo struct {
	db *sql.DB
}

func NewMemoriesRepo(db *sql.DB) *MemoriesRepo {
	return &MemoriesRepo{db: db}
}

// SaveMemory inserts m or updates the record with the same id. An update keeps
// the original position and recorded_at.
func (r *MemoriesRepo) SaveMemory(ctx context.Context, m core.Memory) error {
	if err := m.Validate(); err != nil {
		return err
	}

	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	query := `
		INSERT INTO memories (id, position, content, category, source, tags, importance, recorded_at)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM memories), ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content    = excluded.content,
			category   = excluded.category,
			source     = excluded.source,
			tags       = excluded.tags,
			importance = excluded.importance,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`

	_, err = r.db.ExecContext(ctx, query,
		m.ID, m.Content, string(m.Category), string(m.Source), string(tagsJSON), m.Importance,
		m.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert memory %s: %w", m.ID, err)
	}
	return nil
}

// ListMemories returns all memories in insertion order. Rows that no longer
// satisfy the model are skipped and logged.
func (r *MemoriesRepo) ListMemories(ctx context.Context) ([]core.Memory, error) {
	logger := log.FromCtx(ctx)

	query := `SELECT id, content, category, source, tags, importance, recorded_at FROM memories ORDER BY position ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer rows.Close()

	memories := make([]core.Memory, 0)
	for rows.Next() {
		var (
			m                      core.Memory
			category, source, tags string
			recordedAt             string
		)
		if err := rows.Scan(&m.ID, &m.Content, &category, &source, &tags, &m.Importance, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}

		if err := decodeRow(&m, category, source, tags, recordedAt); err != nil {
			logger.Warn().Err(err).Str("id", m.ID).Msg("skipping malformed memory row")
			continue
		}
		memories = append(memories, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(memories)).Msg("loaded memories")
	return memories, nil
}

func (r *MemoriesRepo) CountMemories(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count memories: %w", err)
	}
	return n, nil
}

func decodeRow(m *core.Memory, category, source, tags, recordedAt string) error {
	var err error
	if m.Category, err = core.ParseCategory(category); err != nil {
		return err
	}
	if m.Source, err = core.ParseSource(source); err != nil {
		return err
	}
	if err = json.Unmarshal([]byte(tags), &m.Tags); err != nil {
		return fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	if m.Timestamp, err = time.Parse(time.RFC3339Nano, recordedAt); err != nil {
		return fmt.Errorf("failed to parse recorded_at: %w", err)
	}
	return m.Validate()
}
