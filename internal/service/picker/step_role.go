package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/sandevgo/ragcfg/internal/service/ui"
)

// RoleStep chooses which model to change.
type RoleStep struct {
	choices []command.Role
	cursor  int
}

func NewRoleStep() Step {
	return &RoleStep{
		choices: []command.Role{command.RoleAgent, command.RoleReranker},
	}
}

func (s *RoleStep) Init() tea.Cmd {
	return nil
}

func (s *RoleStep) Update(msg tea.Msg, state *PickState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Role = s.choices[s.cursor]
			return nil, nil
		}
	}
	return s, nil
}

func (s *RoleStep) View(state *PickState) string {
	var b strings.Builder
	b.WriteString("Which model do you want to change?\n\n")
	for i, role := range s.choices {
		line := fmt.Sprintf("%s (current: %s)", role.Label(), state.Current[role])
		if s.cursor == i {
			b.WriteString(ui.SelectStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(ui.ItemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press esc or ctrl+c to quit)\n")
	return b.String()
}
