package main

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("205")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)
