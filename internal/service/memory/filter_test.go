package memory

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(memories []core.Memory) []string {
	return lo.Map(memories, func(m core.Memory, _ int) string { return m.ID })
}

func TestFilter_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category core.CategoryFilter
		want     []string
	}{
		{name: "no filter returns everything in order", category: core.CategoryAll, want: []string{"1", "2", "3", "4"}},
		{name: "search react across content and tags", search: "react", category: core.CategoryAll, want: []string{"2", "3", "4"}},
		{name: "learning category", category: core.CategoryLearning, want: []string{"3", "4"}},
		{name: "no match", search: "nonexistent-xyz", category: core.CategoryAll, want: []string{}},
		{name: "case insensitive content", search: "ARCHITECTURE", category: core.CategoryAll, want: []string{"1"}},
		{name: "tag only match", search: "code-style", category: core.CategoryAll, want: []string{"1"}},
		{name: "mixed case tag match", search: "Suspense", category: core.CategoryAll, want: []string{"4"}},
		{name: "search and category combined", search: "next", category: core.CategoryLearning, want: []string{"3"}},
		{name: "category with no records", category: core.CategoryFilter(core.CategoryWork), want: []string{}},
		{name: "zero value category means all", search: "react19", want: []string{"4"}},
		{name: "unknown category matches nothing", category: core.CategoryFilter("hobby"), want: []string{}},
		{name: "substring inside word", search: "xt.j", category: core.CategoryAll, want: []string{"2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(Fixture(), core.FilterState{Search: tt.search, Category: tt.category})
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, core.DefaultFilterState())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_Properties(t *testing.T) {
	store := Fixture()
	searches := []string{"", "react", "NEXT", "e", "stable", "nonexistent-xyz", " "}

	for _, cf := range core.CategoryFilters() {
		for _, search := range searches {
			state := core.FilterState{Search: search, Category: cf}
			got := Filter(store, state)

			// idempotent
			assert.Equal(t, got, Filter(got, state), "state %+v", state)

			// ordered subsequence of the store
			pos := -1
			for _, m := range got {
				idx := lo.IndexOf(ids(store), m.ID)
				require.Greater(t, idx, pos, "order broken for %+v", state)
				pos = idx
			}

			if !cf.IsAll() {
				for _, m := range got {
					assert.Equal(t, core.Category(cf), m.Category)
				}
			}

			if search != "" {
				term := strings.ToLower(search)
				included := lo.SliceToMap(got, func(m core.Memory) (string, bool) { return m.ID, true })
				for _, m := range store {
					hit := strings.Contains(strings.ToLower(m.Content), term) ||
						lo.SomeBy(m.Tags, func(tag string) bool { return strings.Contains(strings.ToLower(tag), term) })
					if included[m.ID] {
						assert.True(t, hit, "%s included without matching %q", m.ID, search)
					} else if cf.Matches(m.Category) {
						assert.False(t, hit, "%s excluded although it matches %q", m.ID, search)
					}
				}
			}
		}
	}

	assert.Equal(t, store, Filter(store, core.DefaultFilterState()))
}
