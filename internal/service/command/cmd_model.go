package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/ragcfg/internal/core"
	"github.com/sandevgo/ragcfg/pkg/log"
)

type ModelCommand struct {
	cfg       core.ModelConfig
	notebook  core.NotebookConfig
	formatter *ResponseFormatter
}

func NewModelCommand(
	cfg core.ModelConfig,
	notebook core.NotebookConfig,
) *ModelCommand {
	return &ModelCommand{
		cfg:       cfg,
		notebook:  notebook,
		formatter: NewResponseFormatter(),
	}
}

func (c *ModelCommand) Name() string {
	return "set"
}

func (c *ModelCommand) Description() string {
	return "Show or change the agent or reranker model"
}

// Execute shows the current models when called without arguments and
// switches a model when given a role and a model identifier.
func (c *ModelCommand) Execute(ctx context.Context, args []string) (string, error) {
	switch len(args) {
	case 0:
		return c.current()
	case 2:
		role, err := ParseRole(args[0])
		if err != nil {
			return "", err
		}
		return c.Switch(ctx, role, args[1])
	default:
		return "", fmt.Errorf("%w: expected <agent|reranker> <model>, got %d argument(s)", ErrUsage, len(args))
	}
}

// Switch updates the model for role and persists the configuration.
func (c *ModelCommand) Switch(ctx context.Context, role Role, model string) (string, error) {
	update, current := c.cfg.UpdateAgentModel, c.cfg.AgentModelPath
	if role == RoleReranker {
		update, current = c.cfg.UpdateRerankerModel, c.cfg.RerankerModelPath
	}

	if err := update(model); err != nil {
		return "", fmt.Errorf("failed to set %s model: %w", role, err)
	}

	got, err := current()
	if err != nil {
		return "", err
	}

	log.FromCtx(ctx).Info().
		Str("role", string(role)).
		Str("model", got).
		Str("path", c.cfg.Path()).
		Msg("model updated")

	sections := []string{
		c.formatter.Success(fmt.Sprintf("%s updated to: %s", role.Label(), got)),
	}
	if strings.HasPrefix(strings.ToLower(got), "meta-llama/") {
		sections = append(sections, c.formatter.Note("Llama models may require authentication on HuggingFace\nRun: huggingface-cli login"))
	}
	sections = append(sections, c.nextSteps(role))

	return c.formatter.Combine(sections...), nil
}

func (c *ModelCommand) current() (string, error) {
	agent, err := c.cfg.AgentModelPath()
	if err != nil {
		return "", err
	}
	reranker, err := c.cfg.RerankerModelPath()
	if err != nil {
		return "", err
	}

	return c.formatter.Combine(
		c.formatter.Info("📦", "Current Models"),
		c.formatter.Label("Agent Model", agent),
		c.formatter.Label("Reranker Model", reranker),
		c.formatter.Usage("ragcfg set <agent|reranker> <model>"),
		c.formatter.Examples([]string{
			"ragcfg set agent Qwen/Qwen2.5-1.5B-Instruct",
			"ragcfg set agent ./RAG/qwen2.5-1.5b",
			"ragcfg set reranker BAAI/bge-reranker-base",
		}),
	), nil
}

func (c *ModelCommand) nextSteps(role Role) string {
	open := fmt.Sprintf("Open %s", c.notebook.GetNotebook())
	if role == RoleReranker {
		return c.formatter.Steps("Next steps:", []string{
			open,
			"In cell [6], update RERANKER_MODEL_PATH",
			"You may need to adjust the scoring logic for different reranker models",
		})
	}
	return c.formatter.Steps("Next steps:", []string{
		open,
		"In cell [15], change model_name to match the new path",
		"Run all cells to test the new model",
	})
}
