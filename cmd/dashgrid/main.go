package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dashgrid/internal/grid"
	"dashgrid/internal/layout"
	"dashgrid/internal/telemetry"
	"dashgrid/internal/ui"
)

func main() {
	rows := flag.Int("rows", 4, "grid height in cells")
	cols := flag.Int("cols", 4, "grid width in cells")
	flag.Parse()

	if *rows < 1 || *cols < 1 {
		fmt.Fprintln(os.Stderr, "rows and cols must be at least 1")
		os.Exit(1)
	}

	ctx := context.Background()
	exp, err := telemetry.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry setup: %v\n", err)
		os.Exit(1)
	}
	defer exp.Shutdown(ctx)

	machine := layout.NewMachine(grid.New(*rows, *cols, nil))
	model := ui.NewAppModel(*rows, *cols, machine, exp).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
