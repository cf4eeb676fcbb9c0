package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocchi/internal/registry"
)

var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "List all available bots",
	Long:  `Shows every autoplay strategy that can be passed to 'blocchi sim --bot'.`,
	Run:   runBots,
}

func runBots(cmd *cobra.Command, args []string) {
	bots := registry.List()

	if len(bots) == 0 {
		fmt.Println("No bots available.")
		return
	}

	fmt.Println(titleStyle.Render("Available bots:"))
	fmt.Println()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, b := range bots {
		maxNameLen = max(maxNameLen, len(b.Name))
	}
	nameStyle := lipgloss.NewStyle().Width(maxNameLen).Foreground(accentColor)

	fmt.Printf("  %s  %s\n", headerStyle.Width(maxNameLen).Render("Name"), headerStyle.Render("Description"))
	for _, b := range bots {
		fmt.Printf("  %s  %s\n", nameStyle.Render(b.Name), b.Description)
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("Run 'blocchi sim --bot <name>' to watch one play."))
}
