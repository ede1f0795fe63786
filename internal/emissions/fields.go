package emissions

// Field is one named value of the flat result record shown in tables and
// exports. Precision is the number of decimals a display should round to.
type Field struct {
	Key       string
	Label     string
	Unit      string
	Value     float64
	Precision int
}

// Field keys, stable across releases.
const (
	KeyAmmoniaTonsPerYear   = "ammonia_tons_per_year"
	KeyPilotFuelTonsPerYear = "pilot_fuel_tons_per_year"
	KeyCO2NH3Production     = "co2_nh3_production"
	KeyCO2PilotCombustion   = "co2_pilot_combustion"
	KeyCO2PilotUpstream     = "co2_pilot_upstream"
	KeyCO2TotalBlend        = "co2_total_blend"
	KeyCO2TotalBaseline     = "co2_total_baseline"
	KeyCO2Saved             = "co2_saved"
	KeyCO2ReductionPct      = "co2_reduction_pct"
)

// Fields returns the result as an ordered record of named values.
func (r Result) Fields() []Field {
	e := r.Emissions
	return []Field{
		{Key: KeyAmmoniaTonsPerYear, Label: "Ammonia Produced (t/year)", Unit: "t/year", Value: r.Mass.AmmoniaTonsPerYear},
		{Key: KeyPilotFuelTonsPerYear, Label: "Pilot Fuel Used (MGO, t/year)", Unit: "t/year", Value: r.Mass.PilotFuelTonsPerYear},
		{Key: KeyCO2NH3Production, Label: "CO₂ from NH₃ Production (t/year)", Unit: "t CO₂/year", Value: e.NH3Production},
		{Key: KeyCO2PilotCombustion, Label: "CO₂ from MGO Combustion (t/year)", Unit: "t CO₂/year", Value: e.PilotCombustion},
		{Key: KeyCO2PilotUpstream, Label: "CO₂ from MGO Upstream (t/year)", Unit: "t CO₂/year", Value: e.PilotUpstream},
		{Key: KeyCO2TotalBlend, Label: "Total CO₂ (NH₃ + MGO) (t/year)", Unit: "t CO₂/year", Value: e.TotalBlend},
		{Key: KeyCO2TotalBaseline, Label: "Total CO₂ (HFO baseline) (t/year)", Unit: "t CO₂/year", Value: e.TotalBaseline},
		{Key: KeyCO2Saved, Label: "CO₂ Saved (t/year)", Unit: "t CO₂/year", Value: e.Saved},
		{Key: KeyCO2ReductionPct, Label: "CO₂ Reduction (%)", Unit: "%", Value: e.ReductionPct, Precision: 1},
	}
}

// Map returns the record keyed by Field.Key.
func (r Result) Map() map[string]float64 {
	fields := r.Fields()
	m := make(map[string]float64, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	return m
}
