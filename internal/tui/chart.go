package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Simplici0/ammonia-co2/internal/report"
)

const barGlyph = "█"

// RenderBars draws horizontal bars scaled so the largest value spans width
// cells.
func RenderBars(bars []report.Bar, width int) string {
	if width < 1 {
		width = 1
	}

	largest := 0.0
	labelWidth := 0
	for _, b := range bars {
		largest = max(largest, b.Value)
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}

	lines := make([]string, 0, len(bars))
	for i, b := range bars {
		cells := 0
		if largest > 0 && b.Value > 0 {
			cells = max(1, int(b.Value/largest*float64(width)+0.5))
		}

		color := ColorBlend
		if i > 0 {
			color = ColorBaseline
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(barGlyph, cells))
		label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, b.Label))
		lines = append(lines, fmt.Sprintf("%s %s %s t", label, bar, report.FormatTonnes(b.Value)))
	}
	return strings.Join(lines, "\n")
}
