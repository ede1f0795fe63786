package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
	"github.com/Simplici0/ammonia-co2/internal/report"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	calc, err := emissions.NewCalculator(emissions.DefaultConstants())
	require.NoError(t, err)
	return NewModel(calc)
}

func TestNewModel_StartsAtDefaults(t *testing.T) {
	m := newTestModel(t)

	in, err := m.Input()
	require.NoError(t, err)
	assert.Equal(t, emissions.Advisory.Default, in)

	result, err := m.Result()
	require.NoError(t, err)
	assert.InDelta(t, 1_460_000, result.Mass.AmmoniaTonsPerYear, 1e-9)
}

func TestModel_ArrowKeysStepPilotShare(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	in, err := m.Input()
	require.NoError(t, err)
	assert.Equal(t, 8.0, in.PilotSharePct)

	for i := 0; i < 100; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	in, err = m.Input()
	require.NoError(t, err)
	assert.Equal(t, 0.0, in.PilotSharePct)

	result, err := m.Result()
	require.NoError(t, err)
	assert.Zero(t, result.Mass.PilotFuelTonsPerYear)
}

func TestModel_TabMovesFocusToSlider(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, FocusAmmonia, m.Focus())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusPilot, m.Focus())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	in, err := m.Input()
	require.NoError(t, err)
	assert.Equal(t, 7.5, in.PilotSharePct)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusAmmonia, m.Focus())
}

func TestModel_TypingRecomputes(t *testing.T) {
	m := newTestModel(t)

	// "4000" -> "400" is still inside the advisory range.
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	at400, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, 400.0, at400.Input.AmmoniaTonsPerDay)

	// "40", "4" and "" are not.
	for i := 0; i < 3; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	_, err = m.Input()
	assert.Error(t, err)

	kept, err := m.Result()
	assert.Error(t, err)
	assert.Equal(t, at400, kept)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4500")})
	in, err := m.Input()
	require.NoError(t, err)
	assert.Equal(t, 4500.0, in.AmmoniaTonsPerDay)

	result, err := m.Result()
	require.NoError(t, err)
	assert.InDelta(t, 4500*365.0, result.Mass.AmmoniaTonsPerYear, 1e-9)
}

func TestModel_ViewHidesResultsWhileInputInvalid(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 4; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("50")})

	_, err := m.Result()
	require.ErrorIs(t, err, emissions.ErrOutsideAdvisoryRange)

	view := m.View()
	assert.Contains(t, view, "outside advisory range")
	assert.NotContains(t, view, "Annual Emissions Summary")
	assert.NotContains(t, view, "CO₂ Emissions Comparison")
	// 400 t/day from the last valid input, annualised.
	assert.NotContains(t, view, "146,000")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})
	view = m.View()
	assert.Contains(t, view, "Annual Emissions Summary")
	assert.Contains(t, view, "182,500")
}

func TestModel_RejectsNonNumericAmmonia(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	_, err := m.Input()
	require.Error(t, err)
	assert.Contains(t, m.View(), "must be a number")
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Marine Fuel CO₂ Savings Calculator")
	assert.Contains(t, view, "2,588,776")
	assert.Contains(t, view, report.BaselineLabel)
	assert.Contains(t, view, "7.0%")
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderBars_ScalesToLargest(t *testing.T) {
	out := RenderBars([]report.Bar{
		{Label: "a", Value: 50},
		{Label: "b", Value: 100},
	}, 10)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 5, strings.Count(lines[0], barGlyph))
	assert.Equal(t, 10, strings.Count(lines[1], barGlyph))
}
