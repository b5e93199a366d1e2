package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(0, 1)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

var pcStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("226"))

var haltStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("196"))

var helpStyle = lipgloss.NewStyle().
	Faint(true)
