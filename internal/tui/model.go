// Package tui is the interactive single-screen calculator for terminals.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
	"github.com/Simplici0/ammonia-co2/internal/report"
)

// Focus identifies the input currently receiving keys.
type Focus int

const (
	// FocusAmmonia is the ammonia production text field.
	FocusAmmonia Focus = iota
	// FocusPilot is the pilot share slider.
	FocusPilot
)

const (
	defaultWidth = 80
	sliderCells  = 20
	minBarWidth  = 10
)

// Model is the Bubble Tea model for the calculator screen. It keeps the two
// inputs and the last computation only.
type Model struct {
	calc   *emissions.Calculator
	bounds emissions.AdvisoryRange

	ammonia textinput.Model
	pilot   float64
	focus   Focus

	result emissions.Result
	err    error

	width int
}

// NewModel returns a model starting at the advisory defaults.
func NewModel(calc *emissions.Calculator) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 8
	ti.Width = 10
	ti.SetValue(strconv.FormatFloat(emissions.Advisory.Default.AmmoniaTonsPerDay, 'f', -1, 64))
	ti.Focus()

	m := &Model{
		calc:    calc,
		bounds:  emissions.Advisory,
		ammonia: ti,
		pilot:   emissions.Advisory.Default.PilotSharePct,
		focus:   FocusAmmonia,
		width:   defaultWidth,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "up":
			m.stepPilot(1)
			return m, nil
		case "down":
			m.stepPilot(-1)
			return m, nil
		}

		if m.focus == FocusPilot {
			switch msg.String() {
			case "right", "l", "+":
				m.stepPilot(1)
			case "left", "h", "-":
				m.stepPilot(-1)
			case "q":
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.ammonia.Value()
	m.ammonia, cmd = m.ammonia.Update(msg)
	if m.ammonia.Value() != before {
		m.recompute()
	}
	return m, cmd
}

// Input returns the values currently on screen.
func (m *Model) Input() (emissions.Input, error) {
	raw := strings.TrimSpace(m.ammonia.Value())
	tpd, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return emissions.Input{}, fmt.Errorf("ammonia production must be a number, got %q", raw)
	}
	in := emissions.Input{AmmoniaTonsPerDay: tpd, PilotSharePct: m.pilot}
	if err := m.bounds.Check(in); err != nil {
		return emissions.Input{}, err
	}
	return in, nil
}

// Result returns the last successful computation and the current error, if
// the inputs on screen cannot be computed.
func (m *Model) Result() (emissions.Result, error) {
	return m.result, m.err
}

// Focus returns the focused input.
func (m *Model) Focus() Focus {
	return m.focus
}

func (m *Model) toggleFocus() {
	if m.focus == FocusAmmonia {
		m.focus = FocusPilot
		m.ammonia.Blur()
		return
	}
	m.focus = FocusAmmonia
	m.ammonia.Focus()
}

func (m *Model) stepPilot(direction float64) {
	r := m.bounds.PilotSharePct
	m.pilot = r.Clamp(m.pilot + direction*r.Step)
	m.recompute()
}

func (m *Model) recompute() {
	in, err := m.Input()
	if err != nil {
		m.err = err
		return
	}
	result, err := m.calc.Compute(in)
	if err != nil {
		m.err = err
		return
	}
	m.result = result
	m.err = nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Marine Fuel CO₂ Savings Calculator"))
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(FocusAmmonia, "Ammonia production (t/day)"))
	b.WriteString(" ")
	b.WriteString(m.ammonia.View())
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(FocusPilot, "Pilot fuel share (% energy)"))
	b.WriteString(" ")
	b.WriteString(m.slider())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	// Results belong to the inputs on screen; keep them off while those
	// cannot be computed.
	if m.err == nil {
		b.WriteString(sectionStyle.Render("Annual Emissions Summary"))
		b.WriteString("\n")
		b.WriteString(RenderTable(report.Rows(m.result)))
		b.WriteString("\n")

		b.WriteString(sectionStyle.Render("CO₂ Emissions Comparison"))
		b.WriteString("\n")
		b.WriteString(RenderBars(report.Comparison(m.result), m.barWidth()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch field • ↑/↓ pilot share ±0.5 • esc quit"))
	return b.String()
}

func (m *Model) fieldLabel(f Focus, text string) string {
	if m.focus == f {
		return focusStyle.Render("> " + text)
	}
	return labelStyle.Render("  " + text)
}

func (m *Model) slider() string {
	r := m.bounds.PilotSharePct
	filled := int((m.pilot-r.Min)/(r.Max-r.Min)*sliderCells + 0.5)
	track := strings.Repeat("━", filled) + strings.Repeat("─", sliderCells-filled)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(track),
		" ",
		valueStyle.Render(strconv.FormatFloat(m.pilot, 'f', 1, 64)+"%"),
	)
}

func (m *Model) barWidth() int {
	// label, value and padding take roughly 30 cells.
	return max(minBarWidth, m.width-30)
}
