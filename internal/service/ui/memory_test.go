package ui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestTags_ShowsFirstThree(t *testing.T) {
	got := Tags([]string{"a", "b", "c", "d"})
	assert.Equal(t, "#a #b #c", got)
	assert.Empty(t, Tags(nil))
}

func TestImportance(t *testing.T) {
	assert.Equal(t, "★ 9/10", Importance(9))
	assert.Equal(t, "★ 0/10", Importance(0))
}

func TestMemoryRow(t *testing.T) {
	m := core.Memory{
		ID:         "3",
		Content:    "Learned about Next.js App Router patterns",
		Category:   core.CategoryLearning,
		Source:     core.SourceChatGPT,
		Tags:       []string{"nextjs", "routing", "learning", "extra"},
		Importance: 7,
		Timestamp:  time.Date(2025, 6, 21, 18, 0, 0, 0, time.UTC),
	}

	got := MemoryRow(m, "2h ago", 0, false)
	assert.Contains(t, got, "Learned about Next.js App Router patterns")
	assert.Contains(t, got, "learning")
	assert.Contains(t, got, "chatgpt")
	assert.Contains(t, got, "#routing")
	assert.NotContains(t, got, "#extra")
	assert.Contains(t, got, "2h ago")
	assert.Contains(t, got, "★ 7/10")
}

func TestCategoryColor(t *testing.T) {
	for _, c := range core.Categories() {
		assert.NotEqual(t, lipgloss.Color("8"), CategoryColor(c), c)
	}
	assert.Equal(t, lipgloss.Color("8"), CategoryColor("hobby"))
}

func TestEmptyState(t *testing.T) {
	got := EmptyState()
	assert.Contains(t, got, EmptyTitle)
	assert.Contains(t, got, EmptyHint)
}
