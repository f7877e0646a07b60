package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	minDelay        = time.Millisecond
)

type TickMsg time.Time

// Model drives a session once per tick and renders it.
type Model struct {
	ctrl     *session.Controller
	delay    time.Duration
	theme    int
	styles   styles
	width    int
	height   int
	swaps    []float64
	lastStep int
}

func NewModel(ctrl *session.Controller, delay time.Duration, theme string) Model {
	idx := themeIndex(theme)
	if delay < minDelay {
		delay = minDelay
	}
	return Model{
		ctrl:   ctrl,
		delay:  delay,
		theme:  idx,
		styles: newStyles(Themes[idx]),
		width:  width,
		height: height,
		swaps:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "b":
			m.selectKind(sorting.Bubble)
		case "2", "i":
			m.selectKind(sorting.Insertion)
		case "3", "s":
			m.selectKind(sorting.Selection)
		case "r":
			m.selectKind(m.ctrl.Kind())
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = newStyles(Themes[m.theme])
		}
	case TickMsg:
		m.ctrl.Tick()
		m.record()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) selectKind(kind sorting.Kind) {
	if err := m.ctrl.SelectAlgorithm(kind); err != nil {
		return
	}
	m.swaps = m.swaps[:0]
	m.lastStep = 0
}

// record appends the cumulative swap count when the last tick did work.
func (m *Model) record() {
	stats := m.ctrl.Snapshot().Stats
	if stats.Steps == m.lastStep {
		return
	}
	m.lastStep = stats.Steps
	if len(m.swaps) == historyCapacity {
		m.swaps = append(m.swaps[:0], m.swaps[1:]...)
	}
	m.swaps = append(m.swaps, float64(stats.Swaps))
}

func (m Model) View() string {
	snap := m.ctrl.Snapshot()
	st := m.styles

	var b strings.Builder
	b.WriteString(st.title.Render("sortviz :: " + labelFor(snap.Kind)))
	switch {
	case snap.Finished:
		b.WriteString("  " + st.finished.Render("DONE"))
	case snap.Started:
		b.WriteString("  " + st.running.Render("SORTING"))
	}
	b.WriteString("\n\n")

	if !snap.Started {
		b.WriteString(st.value.Render("press 1, 2 or 3 to pick an algorithm"))
		b.WriteString("\n")
	} else {
		rows := max(m.height-18, 5)
		cols := max(m.width-4, 10)
		base, lit := st.bar, st.highlight
		if snap.Finished {
			base = st.done
		}
		for _, line := range renderBars(snap.Values, snap.Highlight, snap.MaxValue, cols, rows, base, lit) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.stats(snap))
		if len(m.swaps) > 1 {
			plot := asciigraph.Plot(m.swaps,
				asciigraph.Height(5),
				asciigraph.Width(min(max(m.width-14, 10), 60)),
				asciigraph.Caption("cumulative swaps"))
			b.WriteString(st.graph.Render(plot))
			b.WriteString("\n")
		}
	}

	b.WriteString(st.help.Render(fmt.Sprintf("1/2/3 algorithm • r restart • t theme (%s) • q quit", Themes[m.theme].Name)))
	return b.String()
}

func (m Model) stats(snap session.Snapshot) string {
	st := m.styles
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(label), st.value.Render(value)) + "\n"
	}
	sorted := session.Sortedness(snap.Values)
	return row("steps", fmt.Sprintf("%d", snap.Stats.Steps)) +
		row("compares", fmt.Sprintf("%d", snap.Stats.Comparisons)) +
		row("swaps", fmt.Sprintf("%d", snap.Stats.Swaps)) +
		row("sorted", ProgressBar(sorted, 30, st.done)+fmt.Sprintf(" %3.0f%%", sorted*100))
}

func labelFor(k sorting.Kind) string {
	if k == sorting.None {
		return "select algorithm"
	}
	return k.String()
}

// Run starts the terminal program and blocks until the user quits or ctx is
// done.
func Run(ctx context.Context, ctrl *session.Controller, delay time.Duration, theme string) error {
	p := tea.NewProgram(NewModel(ctrl, delay, theme), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
