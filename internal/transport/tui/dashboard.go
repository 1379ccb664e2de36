package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/internal/service/ui"
	"github.com/sandevgo/tuskmem/pkg/humantime"
	"github.com/sandevgo/tuskmem/pkg/log"
)

const (
	searchLimit = 1000
	// content, meta line and a blank separator
	rowHeight = 3
	// title, counter, search, categories, notice, footer and spacing
	chromeHeight = 10
)

// Loader returns the unfiltered memories in store order.
type Loader interface {
	All(ctx context.Context) ([]core.Memory, error)
}

type memoriesMsg struct {
	memories []core.Memory
	err      error
}

type actionMsg struct {
	action core.Action
	err    error
}

// Model is the dashboard screen. It owns the filter state and recomputes the
// visible list from scratch on every change.
type Model struct {
	ctx       context.Context
	loader    Loader
	actions   core.DashboardActions
	formatter *humantime.Formatter
	debug     bool

	input    textinput.Model
	state    core.FilterState
	all      []core.Memory
	visible  []core.Memory
	cursor   int
	offset   int
	loading  bool
	notice   string
	err      error
	width    int
	height   int
	quitting bool
}

type Options struct {
	Formatter *humantime.Formatter
	Debug     bool
}

func NewModel(ctx context.Context, loader Loader, actions core.DashboardActions, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search memories..."
	ti.Prompt = "🔍 "
	ti.CharLimit = searchLimit
	ti.Width = 50
	ti.Focus()

	formatter := opts.Formatter
	if formatter == nil {
		formatter = humantime.NewFormatter("")
	}

	return Model{
		ctx:       ctx,
		loader:    loader,
		actions:   actions,
		formatter: formatter,
		debug:     opts.Debug,
		input:     ti,
		state:     core.DefaultFilterState(),
		visible:   []core.Memory{},
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		memories, err := m.loader.All(m.ctx)
		return memoriesMsg{memories: memories, err: err}
	}
}

func (m Model) runAction(a core.Action) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: a, err: core.RunAction(m.ctx, m.actions, a)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-8)
		m.clampScroll()
		return m, nil

	case memoriesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			log.FromCtx(m.ctx).Error().Err(msg.err).Msg("failed to load memories")
			return m, nil
		}
		m.err = nil
		m.all = msg.memories
		m.recompute()
		return m, nil

	case actionMsg:
		m.notice = actionNotice(msg.action, msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.cycleCategory(1)
			return m, nil
		case "shift+tab":
			m.cycleCategory(-1)
			return m, nil
		case "up":
			m.moveCursor(-1)
			return m, nil
		case "down":
			m.moveCursor(1)
			return m, nil
		case "ctrl+p":
			return m, m.runAction(core.ActionMap)
		case "ctrl+a":
			return m, m.runAction(core.ActionAnalytics)
		case "ctrl+r":
			return m, m.runAction(core.ActionRefresh)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Search {
		m.state.Search = v
		m.recompute()
	}
	return m, cmd
}

func (m *Model) recompute() {
	m.visible = memory.Filter(m.all, m.state)
	m.cursor = 0
	m.offset = 0
}

func (m *Model) cycleCategory(step int) {
	filters := core.CategoryFilters()
	idx := 0
	for i, f := range filters {
		if f == m.state.Normalize().Category {
			idx = i
			break
		}
	}
	idx = (idx + step + len(filters)) % len(filters)
	m.state.Category = filters[idx]
	m.recompute()
}

func (m *Model) moveCursor(step int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+step, 0), len(m.visible)-1)
	m.clampScroll()
}

func (m *Model) clampScroll() {
	rows := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m Model) pageSize() int {
	if m.height == 0 {
		return len(m.visible) + 1
	}
	return max(1, (m.height-chromeHeight)/rowHeight)
}

func actionNotice(a core.Action, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("%s: done", a.Title())
	case errors.Is(err, core.ErrNotImplemented):
		return fmt.Sprintf("%s: %s (not implemented yet)", a.Title(), a.Description())
	default:
		return fmt.Sprintf("%s failed: %v", a.Title(), err)
	}
}

// State returns the current filter selection.
func (m Model) State() core.FilterState {
	return m.state
}

// Visible returns the memories currently listed.
func (m Model) Visible() []core.Memory {
	return m.visible
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(core.AppTitle) + "\n")
	b.WriteString(ui.UsageStyle.Render(ui.FoundLine(len(m.visible))) + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.categoryBar() + "\n\n")

	if m.err != nil {
		b.WriteString(ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(ui.DescStyle.Render("Loading memories...") + "\n")
	case len(m.visible) == 0 && m.err == nil:
		b.WriteString(ui.EmptyState() + "\n")
	default:
		end := min(m.offset+m.pageSize(), len(m.visible))
		for i := m.offset; i < end; i++ {
			mem := m.visible[i]
			b.WriteString(ui.MemoryRow(mem, m.formatter.Format(mem.Timestamp), m.width, i == m.cursor) + "\n\n")
		}
	}

	if m.notice != "" {
		b.WriteString(ui.FlagStyle.Render(m.notice) + "\n")
	}

	if m.debug {
		b.WriteString(ui.DescStyle.Render(fmt.Sprintf("Debug: Total memories: %d, Filtered: %d, Search: %q, Category: %s",
			len(m.all), len(m.visible), m.state.Search, m.state.Category)) + "\n")
	}

	b.WriteString(ui.DescStyle.Render("tab category • ↑/↓ scroll • ctrl+p map • ctrl+a analytics • ctrl+r refresh • esc quit"))
	return b.String()
}

func (m Model) categoryBar() string {
	items := make([]string, 0, len(core.CategoryFilters()))
	for _, f := range core.CategoryFilters() {
		label := f.String()
		if f == m.state.Normalize().Category {
			var bg lipgloss.Color = "6"
			if !f.IsAll() {
				bg = ui.CategoryColor(core.Category(f))
			}
			label = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(bg).Padding(0, 1).Render(label)
		} else {
			label = ui.DescStyle.Padding(0, 1).Render(label)
		}
		items = append(items, label)
	}
	return strings.Join(items, " ")
}

// Run starts the dashboard on the alternate screen and blocks until it exits.
func Run(ctx context.Context, loader Loader, actions core.DashboardActions, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, loader, actions, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
