package picker

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/ragcfg/internal/service/command"
	"github.com/sandevgo/ragcfg/internal/service/ui"
)

const customID = ""

// ModelStep offers the recommended models for the chosen role plus a custom entry.
type ModelStep struct {
	list  list.Model
	ready bool
}

func NewModelStep() Step {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.HeaderStyle

	return &ModelStep{list: l}
}

func (s *ModelStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *ModelStep) Update(msg tea.Msg, state *PickState, width, height int) (Step, tea.Cmd) {
	if !s.ready {
		s.ready = true
		s.list.Title = "Select " + state.Role.Label()
		s.list.SetItems(modelItems(state))
	}

	if width > 0 && height > 4 {
		s.list.SetSize(width, height-4)
	}

	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		wasFiltering := s.Filtering()
		s.list, cmd = s.list.Update(msg)

		if wasFiltering || s.Filtering() {
			return s, cmd
		}

		if i, ok := s.list.SelectedItem().(item); ok {
			// the custom entry leaves Model empty for the next step
			state.Model = i.id
			return nil, nil
		}
		return s, cmd
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// Filtering reports whether the list is taking filter input.
func (s *ModelStep) Filtering() bool {
	return s.list.FilterState() == list.Filtering
}

func (s *ModelStep) View(state *PickState) string {
	return s.list.View()
}

func modelItems(state *PickState) []list.Item {
	choices := command.RecommendedModels(state.Role)
	items := make([]list.Item, 0, len(choices)+1)
	for _, c := range choices {
		desc := c.Description
		if c.ID == state.Current[state.Role] {
			desc += " (current)"
		}
		items = append(items, item{id: c.ID, title: c.ID, desc: desc})
	}
	return append(items, item{id: customID, title: "Custom model...", desc: "Enter a HuggingFace ID or a local path"})
}
