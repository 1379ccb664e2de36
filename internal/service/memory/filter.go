package memory

import (
	"strings"

	"github.com/samber/lo"
	"github.com/sandevgo/tuskmem/internal/core"
)

// Filter returns the memories visible under state, keeping their original order.
// It never fails: no matches yields an empty slice.
func Filter(memories []core.Memory, state core.FilterState) []core.Memory {
	state = state.Normalize()
	term := strings.ToLower(state.Search)

	return lo.Filter(memories, func(m core.Memory, _ int) bool {
		return state.Category.Matches(m.Category) && matchesSearch(m, term)
	})
}

// matchesSearch expects term to be lowercased already.
func matchesSearch(m core.Memory, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Content), term) {
		return true
	}
	return lo.SomeBy(m.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), term)
	})
}
