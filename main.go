package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/halvard/gravmap/sim"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	cfg := sim.DefaultConfig()
	cfg.Sound = true

	simulator, err := sim.New(cfg, screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer simulator.Cleanup()

	simulator.Run()
}
