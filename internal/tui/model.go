// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/linetype/internal/model"
	"github.com/verte-zerg/linetype/internal/session"
	"github.com/verte-zerg/linetype/internal/stats"
)

const retryPrompt = "Press ENTER to try again, or any other key to exit..."

// Model implements the Bubble Tea typing UI for one run of a session.
type Model struct {
	session *session.Session
	grid    *Grid
	styles  styles
	keys    keyMap
	help    help.Model
	log     zerolog.Logger

	width  int
	height int

	started  bool
	errors   int
	finished bool
	metrics  stats.Metrics
	retry    bool
}

// NewModel constructs a typing TUI model drawing s from its current state.
func NewModel(s *session.Session, theme model.Theme, log zerolog.Logger) *Model {
	m := &Model{
		session: s,
		grid:    NewGrid(s.State().Lines()),
		styles:  newStyles(theme),
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     log,
	}
	session.Apply(m.grid, s.Frame())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.finished {
			m.retry = key.Matches(msg, m.keys.Retry)
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Quit) {
			m.log.Info().Msg("session abandoned")
			return m, tea.Quit
		}
		for _, ev := range keyEvents(msg, m.keys) {
			m.handle(ev)
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.grid.Render(m.styles))
	if m.finished {
		b.WriteString("\n")
		b.WriteString(m.renderResults())
		b.WriteString("\n\n")
		b.WriteString(m.styles.label.Render(retryPrompt))
	}
	content := b.String()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// Finished reports whether the last cell has been typed.
func (m *Model) Finished() bool {
	return m.finished
}

// Retry reports whether the user asked to type the same text again.
func (m *Model) Retry() bool {
	return m.retry
}

// Metrics returns the result of a finished session.
func (m *Model) Metrics() stats.Metrics {
	return m.metrics
}

// Grid returns the rendered cell buffer.
func (m *Model) Grid() *Grid {
	return m.grid
}

func (m *Model) handle(ev session.KeyEvent) {
	if m.finished {
		return
	}
	session.Apply(m.grid, m.session.Handle(ev))
	state := m.session.State()
	if !m.started && state.Timer().Running() {
		m.started = true
		m.log.Info().Time("started_at", state.Timer().StartedAt()).Int("chars", state.TotalChars()).Msg("session started")
	}
	if fault, ok := state.Fault(); ok && state.Errors() > m.errors {
		m.errors = state.Errors()
		m.log.Debug().Int("row", fault.Row).Int("col", fault.Col).Int("errors", state.Errors()).Msg("uncorrected error")
	}
	if !m.session.Done() {
		return
	}
	m.finished = true
	metrics, err := stats.FromResult(m.session.Result())
	if err != nil {
		m.log.Error().Err(err).Msg("failed to compute metrics")
		return
	}
	m.metrics = metrics
	m.log.Info().
		Dur("elapsed", metrics.Elapsed).
		Float64("chars_per_minute", metrics.CharsPerMinute).
		Int("errors", metrics.Errors).
		Float64("error_rate", metrics.ErrorRate).
		Msg("session finished")
}

func (m *Model) renderResults() string {
	rows := stats.SummaryRows(m.metrics)
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, m.styles.title.Render("Test complete"), "")
	labelWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > labelWidth {
			labelWidth = w
		}
	}
	for _, row := range rows {
		label := m.styles.label.Render(fmt.Sprintf("%-*s", labelWidth, row[0]))
		lines = append(lines, fmt.Sprintf("%s  %s %s", label, m.styles.value.Render(row[1]), m.styles.label.Render(row[2])))
	}
	return m.styles.box.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	bindings := m.keys.typingHelp()
	if m.finished {
		bindings = m.keys.resultHelp()
	}
	progress := fmt.Sprintf("Progress %d%%", m.grid.Progress(m.finished))
	return m.styles.footer.Render(progress) + "  " + m.help.ShortHelpView(bindings)
}
