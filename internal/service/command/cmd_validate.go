package command

import (
	"context"
	"errors"

	"github.com/sandevgo/ragcfg/internal/core"
	"github.com/sandevgo/ragcfg/internal/ragconfig"
	"github.com/sandevgo/ragcfg/pkg/log"
)

type ValidateCommand struct {
	cfg       core.RAGConfig
	formatter *ResponseFormatter
}

func NewValidateCommand(cfg core.RAGConfig) *ValidateCommand {
	return &ValidateCommand{
		cfg:       cfg,
		formatter: NewResponseFormatter(),
	}
}

func (c *ValidateCommand) Name() string {
	return "validate"
}

func (c *ValidateCommand) Description() string {
	return "Check the configuration against the expected schema"
}

// Execute renders every violation and returns the schema error so callers
// can exit non-zero.
func (c *ValidateCommand) Execute(ctx context.Context, _ []string) (string, error) {
	err := c.cfg.Validate()
	if err == nil {
		return c.formatter.Success(c.cfg.Path() + " is valid"), nil
	}

	var schemaErr *ragconfig.SchemaError
	if !errors.As(err, &schemaErr) {
		return "", err
	}

	log.FromCtx(ctx).Debug().
		Str("path", c.cfg.Path()).
		Int("violations", len(schemaErr.Violations)).
		Msg("schema validation failed")

	return c.formatter.Combine(
		c.formatter.Error(errors.New(c.cfg.Path()+" does not match the expected schema")),
		c.formatter.List(schemaErr.Violations),
	), err
}
