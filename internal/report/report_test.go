package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

func referenceResult(t *testing.T) emissions.Result {
	t.Helper()
	result, err := emissions.Compute(emissions.Input{AmmoniaTonsPerDay: 4000, PilotSharePct: 7})
	require.NoError(t, err)
	return result
}

func TestRows_RoundsForDisplay(t *testing.T) {
	rows := Rows(referenceResult(t))

	got := make(map[string]string, len(rows))
	for _, r := range rows {
		got[r.Key] = r.Formatted
	}

	assert.Equal(t, map[string]string{
		emissions.KeyAmmoniaTonsPerYear:   "1,460,000",
		emissions.KeyPilotFuelTonsPerYear: "47,869",
		emissions.KeyCO2NH3Production:     "408,800",
		emissions.KeyCO2PilotCombustion:   "153,468",
		emissions.KeyCO2PilotUpstream:     "21,541",
		emissions.KeyCO2TotalBlend:        "583,809",
		emissions.KeyCO2TotalBaseline:     "2,588,776",
		emissions.KeyCO2Saved:             "2,004,968",
		emissions.KeyCO2ReductionPct:      "77.4",
	}, got)

	assert.Equal(t, 77.4, rows[len(rows)-1].Value)
}

func TestRound(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      float64
	}{
		{583808.52, 0, 583809},
		{77.448, 1, 77.4},
		{77.45001, 1, 77.5},
		{-0.4, 0, 0},
		{12.5, 0, 13},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.value, tt.precision), 1e-9, "Round(%v, %d)", tt.value, tt.precision)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatTonnes(0))
	assert.Equal(t, "999", FormatTonnes(999.4))
	assert.Equal(t, "1,000", FormatTonnes(999.5))
	assert.Equal(t, "-2,500", FormatTonnes(-2500))
	assert.Equal(t, "1,234.6", FormatNumber(1234.56, 1))
	assert.Equal(t, "77.4%", FormatPercent(77.448))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, referenceResult(t)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Ammonia Produced (t/year)", records[0][0])
	assert.Equal(t, "Pilot Fuel Used (MGO, t/year)", records[0][1])
	assert.Equal(t, "CO₂ Reduction (%)", records[0][8])
	assert.Equal(t, []string{
		"1460000", "47869", "408800", "153468", "21541", "583809", "2588776", "2004968", "77.4",
	}, records[1])
}

func TestComparison(t *testing.T) {
	result := referenceResult(t)
	bars := Comparison(result)

	require.Len(t, bars, 2)
	assert.Equal(t, BlendLabel, bars[0].Label)
	assert.Equal(t, result.Emissions.TotalBlend, bars[0].Value)
	assert.Equal(t, BaselineLabel, bars[1].Label)
	assert.Equal(t, result.Emissions.TotalBaseline, bars[1].Value)
}

func TestWriteChartSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChartSVG(&buf, referenceResult(t)))

	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), BaselineLabel)
}
