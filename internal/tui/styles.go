package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Simplici0/ammonia-co2/internal/report"
)

// Colour palette.
var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorBlend     = lipgloss.Color("36")
	ColorBaseline  = lipgloss.Color("244")
	ColorError     = lipgloss.Color("203")
	ColorHighlight = lipgloss.Color("214")
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	focusStyle   = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	helpStyle    = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)
	sectionStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).MarginTop(1)
)

// RenderTable renders display rows as a two-column bordered table.
func RenderTable(rows []report.Row) string {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{r.Label, r.Formatted})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorLabel)).
		Headers("Quantity", "Value").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Foreground(ColorHeader).Bold(true)
			case col == 1:
				return s.Foreground(ColorValue).Align(lipgloss.Right)
			}
			return s.Foreground(ColorLabel)
		}).
		String()
}
