package core

import "context"

// Command renders text output for one ragcfg action.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args []string) (string, error)
}
