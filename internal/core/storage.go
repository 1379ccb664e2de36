package core

import "context"

// MemorySource is the read side every memory store implements.
// ListMemories returns records in store order.
type MemorySource interface {
	ListMemories(ctx context.Context) ([]Memory, error)
}

type MemoryRepository interface {
	MemorySource
	SaveMemory(ctx context.Context, m Memory) error
	CountMemories(ctx context.Context) (int, error)
}
