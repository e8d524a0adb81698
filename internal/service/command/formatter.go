package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/ragcfg/internal/service/ui"
)

const ruleWidth = 50

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

// Banner renders a title between two rules of ch.
func (f *ResponseFormatter) Banner(title, ch string, width int) string {
	rule := strings.Repeat(ch, width)
	return fmt.Sprintf("%s\n%s\n%s\n", rule, ui.HeaderStyle.Render(title), rule)
}

// Heading renders a title underlined with ch.
func (f *ResponseFormatter) Heading(title, ch string) string {
	return fmt.Sprintf("%s\n%s\n", ui.HeaderStyle.Render(title), strings.Repeat(ch, ruleWidth))
}

func (f *ResponseFormatter) Info(emoji, title string) string {
	if emoji == "" {
		return fmt.Sprintf("\n%s\n", ui.HeaderStyle.Render(title+":"))
	}
	return fmt.Sprintf("\n%s %s\n", emoji, ui.HeaderStyle.Render(title+":"))
}

func (f *ResponseFormatter) Success(message string) string {
	return ui.SuccessStyle.Render("✓ "+message) + "\n"
}

func (f *ResponseFormatter) Error(err error) string {
	return ui.ErrorStyle.Render("✗ "+err.Error()) + "\n"
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("  %s %s\n", ui.LabelStyle.Render(label+":"), ui.ValueStyle.Render(value))
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("\nUsage:\n  %s\n", ui.UsageStyle.Render(command))
}

func (f *ResponseFormatter) Examples(examples []string) string {
	var sb strings.Builder
	sb.WriteString("\nExamples:\n")
	for _, ex := range examples {
		sb.WriteString("  " + ui.UsageStyle.Render(ex) + "\n")
	}
	return sb.String()
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  - %s\n", item))
	}
	return sb.String()
}

// Steps renders a numbered list under title.
func (f *ResponseFormatter) Steps(title string, steps []string) string {
	var sb strings.Builder
	sb.WriteString("\n" + title + "\n")
	for i, step := range steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	return sb.String()
}

func (f *ResponseFormatter) Note(text string) string {
	return "\n" + ui.TipStyle.Render("Note: "+text) + "\n"
}

func (f *ResponseFormatter) Tip(text string) string {
	return "\n" + ui.TipStyle.Render("💡 Tip: "+text) + "\n"
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "")
}
