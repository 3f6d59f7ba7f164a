package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vizard/internal/maps"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available maps",
	Long:  `Shows a list of the built-in maps and the maps found in --maps-dir.`,
	Run:   runMaps,
}

var mapsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a custom map file",
	Long: `Parses a map file and reports its size, or the first problem found.

Examples:
  vizard maps validate ./my-map.yaml
  vizard maps validate ./my-map.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runMapsValidate,
}

func init() {
	mapsCmd.AddCommand(mapsValidateCmd)
}

func runMaps(_ *cobra.Command, _ []string) {
	list := maps.List()

	if len(list) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range list {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	// Print maps
	for _, m := range list {
		size := fmt.Sprintf("%dx%d", m.Width, m.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, m.ID, size, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'vizard play <id>' to play a map.")
}

func runMapsValidate(_ *cobra.Command, args []string) {
	m, err := maps.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid map: %v\n", err)
		os.Exit(1)
	}

	w, h := m.Grid().Dimensions()
	fmt.Printf("%s: map %q (%s) is valid, %dx%d tiles\n", args[0], m.ID, m.Title(), w, h-1)
}
