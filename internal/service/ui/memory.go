package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskmem/internal/core"
)

const (
	// MaxTags is how many tags a memory row shows.
	MaxTags = 3

	EmptyTitle = "No memories found"
	EmptyHint  = "Try adjusting your search or filter criteria"
)

func FoundLine(n int) string {
	return fmt.Sprintf("%d memories found", n)
}

func Importance(n int) string {
	return fmt.Sprintf("★ %d/%d", n, core.MaxImportance)
}

func Tags(tags []string) string {
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = TagStyle.Render("#" + t)
	}
	return strings.Join(parts, " ")
}

// MemoryRow renders one memory as two lines: content, then badges, tags,
// relative time and importance. width <= 0 disables wrapping.
func MemoryRow(m core.Memory, relative string, width int, selected bool) string {
	content := m.Content
	if width > 4 {
		content = lipgloss.NewStyle().Width(width - 4).Render(content)
	}

	meta := []string{CategoryBadge(m.Category), SourceBadge(m.Source)}
	if tags := Tags(m.Tags); tags != "" {
		meta = append(meta, tags)
	}
	meta = append(meta, DescStyle.Render(relative), ImportanceStyle.Render(Importance(m.Importance)))

	row := lipgloss.JoinVertical(lipgloss.Left, content, strings.Join(meta, " "))
	if selected {
		return SelectedStyle.Render(row)
	}
	return RowStyle.Render(row)
}

// EmptyState is shown instead of the list when nothing matches.
func EmptyState() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(EmptyTitle),
		DescStyle.Render(EmptyHint),
	)
}
