package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CustomModelStep asks for a free-form model identifier. It is skipped when
// a recommended model was picked.
type CustomModelStep struct {
	input textinput.Model
}

func NewCustomModelStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = "Qwen/Qwen2.5-1.5B-Instruct or ./RAG/my-model"
	ti.Width = 50
	return &CustomModelStep{input: ti}
}

func (s *CustomModelStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
}

func (s *CustomModelStep) Update(msg tea.Msg, state *PickState, width, height int) (Step, tea.Cmd) {
	if state.Model != "" {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val != "" {
			state.Model = val
			return nil, nil
		}
	}
	return s, cmd
}

func (s *CustomModelStep) View(state *PickState) string {
	return "Enter the " + state.Role.Label() + ":\n\n" + s.input.View() + "\n\n(press enter to confirm)\n"
}
