package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vizard/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorDirt:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorStone:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorShard:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorEffect:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
