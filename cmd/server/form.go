package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

// formValues keeps the raw query values so the form can be re-rendered as
// the user typed it.
type formValues struct {
	Ammonia string
	Pilot   string
}

func (f formValues) query() string {
	q := url.Values{}
	q.Set("ammonia", f.Ammonia)
	q.Set("pilot", f.Pilot)
	return q.Encode()
}

func defaultFormValues() formValues {
	d := emissions.Advisory.Default
	return formValues{
		Ammonia: strconv.FormatFloat(d.AmmoniaTonsPerDay, 'f', -1, 64),
		Pilot:   strconv.FormatFloat(d.PilotSharePct, 'f', 1, 64),
	}
}

// readFormValues reads ammonia and pilot from q, falling back to the
// advisory defaults for missing values.
func readFormValues(q url.Values) formValues {
	f := defaultFormValues()
	if v := strings.TrimSpace(q.Get("ammonia")); v != "" {
		f.Ammonia = v
	}
	if v := strings.TrimSpace(q.Get("pilot")); v != "" {
		f.Pilot = v
	}
	return f
}

// parseInput converts raw form values into a calculator input. When
// advisory is true the values must also lie inside emissions.Advisory.
func parseInput(f formValues, advisory bool) (emissions.Input, error) {
	ammonia, err := parseFloat(f.Ammonia, "ammonia")
	if err != nil {
		return emissions.Input{}, err
	}
	pilot, err := parseFloat(f.Pilot, "pilot")
	if err != nil {
		return emissions.Input{}, err
	}

	in := emissions.Input{AmmoniaTonsPerDay: ammonia, PilotSharePct: pilot}
	if err := emissions.ValidateInput(in); err != nil {
		return emissions.Input{}, err
	}
	if advisory {
		if err := emissions.Advisory.Check(in); err != nil {
			return emissions.Input{}, err
		}
	}
	return in, nil
}

func parseFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be numeric", emissions.ErrInvalidInput, field)
	}
	return value, nil
}
