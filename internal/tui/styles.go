package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	emptyStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	otherStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	listStyle   = lipgloss.NewStyle().Width(28).MarginTop(1)
	detailStyle = lipgloss.NewStyle().MarginTop(1).PaddingLeft(2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238"))

	categoryStyles = map[vocabulary.Category]lipgloss.Style{
		vocabulary.Component: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		vocabulary.Finish:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		vocabulary.Density:   lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		vocabulary.Bloom:     lipgloss.NewStyle().Foreground(lipgloss.Color("219")),
		vocabulary.Material:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		vocabulary.Shape:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
)
