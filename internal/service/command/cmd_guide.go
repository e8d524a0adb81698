package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/ragcfg/internal/core"
)

const guideWidth = 60

type GuideCommand struct {
	settings  core.GuideConfig
	formatter *ResponseFormatter
}

func NewGuideCommand(settings core.GuideConfig) *GuideCommand {
	return &GuideCommand{
		settings:  settings,
		formatter: NewResponseFormatter(),
	}
}

func (c *GuideCommand) Name() string {
	return "guide"
}

func (c *GuideCommand) Description() string {
	return "Quick start guide for changing models"
}

func (c *GuideCommand) Execute(_ context.Context, _ []string) (string, error) {
	f := c.formatter
	notebook := c.settings.GetNotebook()

	choices := RecommendedModels(RoleAgent)
	models := make([]string, 0, len(choices))
	for _, m := range choices {
		models = append(models, fmt.Sprintf("%s (%s)", m.ID, m.Description))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(f.Banner("QUICK START: How to Change Your Model", "=", guideWidth))
	sb.WriteString("\nStep 1: Choose Your Model\n")
	sb.WriteString(f.List(models))
	sb.WriteString("\nStep 2: Update Configuration\n")
	sb.WriteString(fmt.Sprintf("  Method A - Edit %s manually:\n", c.settings.GetConfigPath()))
	sb.WriteString("    Change \"agent_model\" -> \"path\" to your model name\n")
	sb.WriteString("\n  Method B - Use this tool:\n")
	sb.WriteString("    ragcfg set agent " + choices[0].ID + "\n")
	sb.WriteString("    ragcfg pick\n")
	sb.WriteString("\nStep 3: Update the Notebook\n")
	sb.WriteString(fmt.Sprintf("  Open %s, Cell [15]:\n", notebook))
	sb.WriteString(fmt.Sprintf("    model_name = %q\n", choices[0].ID))
	sb.WriteString("\nStep 4: Test Your Changes\n")
	sb.WriteString(fmt.Sprintf("  Run all cells in %s\n", notebook))
	sb.WriteString("\n" + strings.Repeat("=", guideWidth) + "\n")

	return sb.String(), nil
}
