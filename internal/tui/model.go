// Package tui implements the interactive terminal dashboard: the user types
// an index, every strategy is raced on it, and the ranked timings are shown
// in place.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/numcalc/internal/cli"
	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/orchestration"
)

// KeyMap defines the key bindings of the dashboard.
type KeyMap struct {
	Compute key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Compute: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "compute"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear results"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compute, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Compute, k.Clear}, {k.Help, k.Quit}}
}

// resultsMsg delivers a finished comparison run to the model.
type resultsMsg struct {
	n       int
	results []orchestration.MethodResult
	err     error
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	ctx      context.Context
	input    textinput.Model
	keymap   KeyMap
	help     help.Model
	running  bool
	lastN    int
	results  []orchestration.MethodResult
	runErr   error
	exitCode int
}

// NewModel creates the initial dashboard model.
func NewModel(ctx context.Context, cfg config.AppConfig) Model {
	ti := textinput.New()
	ti.Placeholder = "index, e.g. 30"
	ti.CharLimit = 12
	ti.Width = 24
	ti.Focus()
	if cfg.N != config.DefaultN {
		ti.SetValue(strconv.Itoa(cfg.N))
	}

	return Model{
		ctx:      ctx,
		input:    ti,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		exitCode: apperrors.ExitSuccess,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.Clear):
			m.results = nil
			m.runErr = nil
			return m, nil
		case key.Matches(msg, m.keymap.Compute):
			if m.running {
				return m, nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.runErr = apperrors.NewDomainError("'%s' is not an integer", m.input.Value())
				return m, nil
			}
			m.running = true
			m.runErr = nil
			m.lastN = n
			return m, computeCmd(m.ctx, n)
		}

	case resultsMsg:
		m.running = false
		m.results = msg.results
		m.runErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// computeCmd races every strategy on n off the UI goroutine.
func computeCmd(ctx context.Context, n int) tea.Cmd {
	return func() tea.Msg {
		results, err := orchestration.CompareMethods(ctx, n)
		return resultsMsg{n: n, results: results, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Numeric Calculator Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("F(n) for n = "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.running:
		b.WriteString(spinnerStyle.Render(fmt.Sprintf("Racing all methods on F(%d)...", m.lastN)))
		b.WriteString("\n")
	case m.runErr != nil:
		b.WriteString(errStyle.Render("Error: " + m.runErr.Error()))
		b.WriteString("\n")
	case m.results != nil:
		b.WriteString(panelStyle.Render(m.renderResults()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

// renderResults formats the ranked comparison table.
func (m Model) renderResults() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Comparison for F(%d)", m.lastN)))
	for _, r := range m.results {
		name := methodStyle.Render(fmt.Sprintf("%-12s", r.Method))
		switch {
		case r.Skipped:
			fmt.Fprintf(&b, "%s %s\n", name, skipStyle.Render("skipped (impractical at this index)"))
		case r.Err != nil:
			fmt.Fprintf(&b, "%s %s\n", name, errStyle.Render(r.Err.Error()))
		default:
			fmt.Fprintf(&b, "%s %s  (%d digits)\n",
				name,
				valueStyle.Render(fmt.Sprintf("%10s", cli.FormatExecutionDuration(r.Duration))),
				len(r.Value.String()))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the dashboard and blocks until the user quits.
//
// Parameters:
//   - ctx: The context bounding the session and its computations.
//   - cfg: The application configuration.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, cfg config.AppConfig) int {
	p := tea.NewProgram(NewModel(ctx, cfg), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := final.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
