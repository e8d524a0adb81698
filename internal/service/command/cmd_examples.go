package command

import (
	"context"
	"fmt"
	"strings"
)

// ExamplesCommand lists the canned model switches or applies one of them.
type ExamplesCommand struct {
	models    *ModelCommand
	formatter *ResponseFormatter
}

func NewExamplesCommand(models *ModelCommand) *ExamplesCommand {
	return &ExamplesCommand{
		models:    models,
		formatter: NewResponseFormatter(),
	}
}

func (c *ExamplesCommand) Name() string {
	return "examples"
}

func (c *ExamplesCommand) Description() string {
	return "List or apply the example model switches"
}

func (c *ExamplesCommand) Execute(ctx context.Context, args []string) (string, error) {
	switch len(args) {
	case 0:
		return c.list(), nil
	case 1:
		return c.apply(ctx, args[0])
	default:
		return "", fmt.Errorf("%w: expected at most one example name, got %d", ErrUsage, len(args))
	}
}

func (c *ExamplesCommand) list() string {
	items := make([]string, 0, len(examples))
	for _, ex := range Examples() {
		items = append(items, fmt.Sprintf("%-9s %s (%s -> %s)", ex.Name, ex.Title, ex.Role, ex.Model))
	}
	return c.formatter.Combine(
		c.formatter.Info("🧪", "Examples"),
		c.formatter.List(items),
		c.formatter.Usage("ragcfg examples <name>"),
	)
}

func (c *ExamplesCommand) apply(ctx context.Context, name string) (string, error) {
	ex, n, err := FindExample(name)
	if err != nil {
		return "", err
	}

	out, err := c.models.Switch(ctx, ex.Role, ex.Model)
	if err != nil {
		return "", err
	}

	return c.formatter.Combine(
		fmt.Sprintf("Example %d: %s\n", n, ex.Title),
		strings.Repeat("-", ruleWidth)+"\n",
		"\n",
		out,
	), nil
}
