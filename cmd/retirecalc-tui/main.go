package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/tui"
)

func main() {
	// Optional assumptions file; falls back to RETIRECALC_ASSUMPTIONS, then the built-in tables
	env := config.LoadEnvironment()
	assumptionsPath := env.AssumptionsFile
	if len(os.Args) > 2 {
		fmt.Println("Usage: retirecalc-tui [assumptions-file]")
		os.Exit(1)
	}
	if len(os.Args) == 2 {
		assumptionsPath = os.Args[1]
	}

	if assumptionsPath != "" {
		if _, err := os.Stat(assumptionsPath); os.IsNotExist(err) {
			fmt.Printf("Error: assumptions file not found: %s\n", assumptionsPath)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		tui.NewModel(assumptionsPath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
