// Command wreckeddemo is a small bubbletea/v2 program that drives a
// wrecked.RectManager: a bouncing rect between a header and a footer,
// resized live as the terminal changes. It follows the structure of
// examples/bubbletea-demo/main.go — color-profile selection up front,
// then a plain tea.NewProgram/Run loop — generalized from an immediate-mode
// widget toolkit to wrecked's retained-mode rect tree.
package main

import (
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

func main() {
	logFile, err := os.OpenFile("wreckeddemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	// wrecked only ever produces 4-bit indexed colors, so the program
	// always forces the ANSI profile rather than auto-detecting a wider
	// one the compositor could never emit.
	opts := []tea.ProgramOption{tea.WithColorProfile(colorprofile.ANSI)}

	p := tea.NewProgram(newModel(), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "wreckeddemo: %v\n", err)
		os.Exit(1)
	}
}
