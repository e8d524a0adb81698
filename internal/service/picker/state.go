package picker

import "github.com/sandevgo/ragcfg/internal/service/command"

// PickState carries the choices made across the wizard steps.
type PickState struct {
	// Current holds the model configured for each role before the wizard ran.
	Current map[command.Role]string
	Role    command.Role
	Model   string
}

func NewPickState(current map[command.Role]string) *PickState {
	if current == nil {
		current = make(map[command.Role]string)
	}
	return &PickState{Current: current}
}
