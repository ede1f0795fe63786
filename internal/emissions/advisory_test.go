package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisory_Check(t *testing.T) {
	assert.NoError(t, Advisory.Check(Advisory.Default))
	assert.NoError(t, Advisory.Check(Input{AmmoniaTonsPerDay: 100, PilotSharePct: 0}))
	assert.NoError(t, Advisory.Check(Input{AmmoniaTonsPerDay: 10000, PilotSharePct: 20}))

	assert.ErrorIs(t, Advisory.Check(Input{AmmoniaTonsPerDay: 50, PilotSharePct: 7}), ErrOutsideAdvisoryRange)
	assert.ErrorIs(t, Advisory.Check(Input{AmmoniaTonsPerDay: 4000, PilotSharePct: 35}), ErrOutsideAdvisoryRange)

	// Outside the advisory range is still computable.
	_, err := Compute(Input{AmmoniaTonsPerDay: 4000, PilotSharePct: 35})
	assert.NoError(t, err)
}

func TestAdvisory_Clamp(t *testing.T) {
	got := Advisory.Clamp(Input{AmmoniaTonsPerDay: 20000, PilotSharePct: -3})
	assert.Equal(t, Input{AmmoniaTonsPerDay: 10000, PilotSharePct: 0}, got)

	assert.Equal(t, Advisory.Default, Advisory.Clamp(Advisory.Default))
}
