package command

import (
	"github.com/sandevgo/ragcfg/internal/core"
)

func NewCommands(
	cfg core.RAGConfig,
	settings core.GuideConfig,
	format Format,
) []core.Command {
	models := NewModelCommand(cfg, settings)
	return []core.Command{
		models,
		NewExamplesCommand(models),
		NewShowCommand(cfg, format),
		NewGuideCommand(settings),
		NewValidateCommand(cfg),
	}
}
