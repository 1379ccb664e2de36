package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskmem/internal/core"
)

var (
	// TitleStyle ANSI 6 (Cyan) reads well on dark and light terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for counters and usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) for secondary text
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags and notifications
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	TagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	ImportanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("6")).
			PaddingLeft(1)

	RowStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// Category colours of the web dashboard (tailwind 500 shades).
var categoryColors = map[core.Category]lipgloss.Color{
	core.CategoryPersonal: lipgloss.Color("#3b82f6"),
	core.CategoryWork:     lipgloss.Color("#22c55e"),
	core.CategoryLearning: lipgloss.Color("#a855f7"),
	core.CategoryProject:  lipgloss.Color("#f97316"),
	core.CategoryInsight:  lipgloss.Color("#ec4899"),
}

func CategoryColor(c core.Category) lipgloss.Color {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return lipgloss.Color("8")
}

func CategoryBadge(c core.Category) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(CategoryColor(c)).
		Padding(0, 1).
		Render(c.String())
}

func SourceBadge(s core.Source) string {
	return SourceStyle.Render(s.String())
}
