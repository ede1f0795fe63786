package main

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

func TestReadFormValuesDefaults(t *testing.T) {
	f := readFormValues(url.Values{})
	assert.Equal(t, "4000", f.Ammonia)
	assert.Equal(t, "7.0", f.Pilot)
	assert.Equal(t, "ammonia=4000&pilot=7.0", f.query())
}

func TestReadFormValuesTrimsInput(t *testing.T) {
	f := readFormValues(url.Values{"ammonia": {" 2500 "}, "pilot": {"12.5"}})
	assert.Equal(t, formValues{Ammonia: "2500", Pilot: "12.5"}, f)
}

func TestParseInput(t *testing.T) {
	in, err := parseInput(formValues{Ammonia: "2500", Pilot: "12.5"}, true)
	require.NoError(t, err)
	assert.Equal(t, emissions.Input{AmmoniaTonsPerDay: 2500, PilotSharePct: 12.5}, in)

	_, err = parseInput(formValues{Ammonia: "x", Pilot: "1"}, false)
	assert.ErrorIs(t, err, emissions.ErrInvalidInput)

	_, err = parseInput(formValues{Ammonia: "4000", Pilot: "100"}, false)
	assert.ErrorIs(t, err, emissions.ErrInvalidInput)

	_, err = parseInput(formValues{Ammonia: "4000", Pilot: "25"}, true)
	assert.ErrorIs(t, err, emissions.ErrOutsideAdvisoryRange)

	in, err = parseInput(formValues{Ammonia: "4000", Pilot: "25"}, false)
	require.NoError(t, err)
	assert.Equal(t, 25.0, in.PilotSharePct)
}
