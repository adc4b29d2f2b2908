package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List maze size presets",
	Long:  `Shows the size presets accepted by 'mazegen generate --preset'.`,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	fmt.Println("Size presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range config.Presets {
		if len(p) > maxNameLen {
			maxNameLen = len(p)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Size")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----")

	// Print presets
	for _, p := range config.Presets {
		w, d, _ := config.DimensionsForPreset(p)
		fmt.Printf("  %-*s  %dx%d\n", maxNameLen, p, w, d)
	}

	fmt.Println()
	fmt.Println("Run 'mazegen generate --preset <name>' to use one.")
}
