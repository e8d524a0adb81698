package ui

import "github.com/charmbracelet/lipgloss"

// Help template styles. ANSI colors keep them readable on light and dark
// terminals.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Command output styles.
var (
	HeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	TipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ItemStyle    = lipgloss.NewStyle().PaddingLeft(2)
	SelectStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
)
