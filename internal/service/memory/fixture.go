package memory

import (
	"time"

	"github.com/sandevgo/tuskmem/internal/core"
)

// Fixture returns the built-in dashboard records in display order.
func Fixture() []core.Memory {
	return []core.Memory{
		{
			ID:         "1",
			Content:    "User prefers clean, modular code architecture with well-separated concerns",
			Category:   core.CategoryPersonal,
			Source:     core.SourceCursor,
			Timestamp:  fixtureTime("2025-06-21T20:00:00.000Z"),
			Tags:       []string{"preference", "architecture", "code-style"},
			Importance: 9,
		},
		{
			ID:         "2",
			Content:    "Memory Orchestration Platform successfully deployed with Next.js 15 and React 19",
			Category:   core.CategoryProject,
			Source:     core.SourceCursor,
			Timestamp:  fixtureTime("2025-06-21T19:00:00.000Z"),
			Tags:       []string{"deployment", "nextjs", "react"},
			Importance: 10,
		},
		{
			ID:         "3",
			Content:    "Latest stable versions: Next.js 15.3.4 and React 19.1.0 are production ready",
			Category:   core.CategoryLearning,
			Source:     core.SourceChatGPT,
			Timestamp:  fixtureTime("2025-06-21T18:00:00.000Z"),
			Tags:       []string{"nextjs", "react", "versions", "stable"},
			Importance: 8,
		},
		{
			ID:         "4",
			Content:    "React 19 introduces Server Components and improved Suspense patterns",
			Category:   core.CategoryLearning,
			Source:     core.SourceManual,
			Timestamp:  fixtureTime("2025-06-21T17:00:00.000Z"),
			Tags:       []string{"react19", "server-components", "suspense"},
			Importance: 9,
		},
	}
}

func fixtureTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return t
}
