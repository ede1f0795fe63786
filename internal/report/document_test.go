package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

func TestNewDocument(t *testing.T) {
	result := referenceResult(t)
	doc := NewDocument(result)

	assert.Equal(t, 4000.0, doc.Input.AmmoniaTonsPerDay)
	assert.Equal(t, result.Emissions.Saved, doc.Emissions.Saved)
	assert.Equal(t, result.Energy.TotalMJPerDay, doc.Energy.Total)
	assert.Equal(t, result.Emissions.TotalBlend, doc.Fields[emissions.KeyCO2TotalBlend])
	assert.True(t, doc.WithinAdvisoryRange)
}

func TestNewDocument_FlagsInputOutsideAdvisoryRange(t *testing.T) {
	result, err := emissions.Compute(emissions.Input{AmmoniaTonsPerDay: 4000, PilotSharePct: 45})
	require.NoError(t, err)

	assert.False(t, NewDocument(result).WithinAdvisoryRange)
}
