package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultFields_OrderAndValues(t *testing.T) {
	result, err := Compute(Input{AmmoniaTonsPerDay: 4000, PilotSharePct: 7})
	require.NoError(t, err)

	fields := result.Fields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}

	assert.Equal(t, []string{
		KeyAmmoniaTonsPerYear,
		KeyPilotFuelTonsPerYear,
		KeyCO2NH3Production,
		KeyCO2PilotCombustion,
		KeyCO2PilotUpstream,
		KeyCO2TotalBlend,
		KeyCO2TotalBaseline,
		KeyCO2Saved,
		KeyCO2ReductionPct,
	}, keys)

	last := fields[len(fields)-1]
	assert.Equal(t, 1, last.Precision)
	assert.Equal(t, result.Emissions.ReductionPct, last.Value)

	m := result.Map()
	assert.Len(t, m, len(fields))
	assert.Equal(t, result.Emissions.Saved, m[KeyCO2Saved])

	blend, baseline := result.Totals()
	assert.Equal(t, m[KeyCO2TotalBlend], blend)
	assert.Equal(t, m[KeyCO2TotalBaseline], baseline)
}
