// Package picker is the interactive model picker behind `ragcfg pick`.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/ragcfg/internal/service/ui"
)

// ErrCancelled is returned by [Run] when the user quits before choosing.
var ErrCancelled = errors.New("model selection cancelled")

// Step represents a single step in the picker
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *PickState, width, height int) (Step, tea.Cmd)
	View(state *PickState) string
}

type filterer interface {
	Filtering() bool
}

func getSteps() []Step {
	return []Step{
		NewRoleStep(),
		NewModelStep(),
		NewCustomModelStep(),
	}
}

type item struct {
	id    string
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

type nextMsg struct{}

// model orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *PickState
	quitting    bool
	width       int
	height      int
}

func initialModel(state *PickState) model {
	return model{
		steps: getSteps(),
		state: state,
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 && m.steps[0] != nil {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if !m.filtering() {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	if m.done() {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)

	if nextStep == nil {
		m.currentStep++
		if m.done() {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	if nextStep != m.steps[m.currentStep] {
		m.steps[m.currentStep] = nextStep
	}

	return m, cmd
}

func (m model) filtering() bool {
	if m.done() {
		return false
	}
	f, ok := m.steps[m.currentStep].(filterer)
	return ok && f.Filtering()
}

func (m model) done() bool {
	return m.currentStep >= len(m.steps)
}

func (m model) View() string {
	if m.quitting {
		return "Model selection cancelled.\n"
	}
	if m.done() {
		return fmt.Sprintf("Selected %s: %s\n", m.state.Role.Label(), m.state.Model)
	}
	return ui.TitleStyle.Render("RAG model picker") + "\n" + m.steps[m.currentStep].View(m.state)
}

// Run starts the picker TUI and returns the chosen role and model. The
// configuration is not touched; callers apply the result.
func Run(ctx context.Context, in io.Reader, out io.Writer, state *PickState) (*PickState, error) {
	p := tea.NewProgram(
		initialModel(state),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run picker: %w", err)
	}

	final := m.(model)
	if final.quitting || final.state.Model == "" {
		return nil, ErrCancelled
	}
	return final.state, nil
}
