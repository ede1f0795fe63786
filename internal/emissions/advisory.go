package emissions

import "fmt"

// Range is a closed interval with the step offered by input widgets.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	}
	return v
}

// AdvisoryRange is the input range the calculator screens offer. It is
// narrower than the formula domain enforced by ValidateInput.
type AdvisoryRange struct {
	AmmoniaTonsPerDay Range
	PilotSharePct     Range
	Default           Input
}

// Advisory is the range used by the web form and the terminal UI.
var Advisory = AdvisoryRange{
	AmmoniaTonsPerDay: Range{Min: 100, Max: 10000, Step: 100},
	PilotSharePct:     Range{Min: 0, Max: 20, Step: 0.5},
	Default:           Input{AmmoniaTonsPerDay: 4000, PilotSharePct: 7.0},
}

// Check returns ErrOutsideAdvisoryRange when in is computable but outside
// the advisory range.
func (a AdvisoryRange) Check(in Input) error {
	if !a.AmmoniaTonsPerDay.Contains(in.AmmoniaTonsPerDay) {
		return fieldError(ErrOutsideAdvisoryRange, "ammonia_tons_per_day", in.AmmoniaTonsPerDay, outside(a.AmmoniaTonsPerDay))
	}
	if !a.PilotSharePct.Contains(in.PilotSharePct) {
		return fieldError(ErrOutsideAdvisoryRange, "pilot_share_pct", in.PilotSharePct, outside(a.PilotSharePct))
	}
	return nil
}

// Clamp returns in with both values limited to the advisory range.
func (a AdvisoryRange) Clamp(in Input) Input {
	return Input{
		AmmoniaTonsPerDay: a.AmmoniaTonsPerDay.Clamp(in.AmmoniaTonsPerDay),
		PilotSharePct:     a.PilotSharePct.Clamp(in.PilotSharePct),
	}
}

func outside(r Range) string {
	return fmt.Sprintf("is outside [%g, %g]", r.Min, r.Max)
}
