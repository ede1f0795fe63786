package report

import (
	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

// Document is the machine-readable form of a result, shared by the JSON API
// and the CLI json/yaml outputs. Values are unrounded.
type Document struct {
	Input               InputDoc           `json:"input" yaml:"input"`
	Shares              SharesDoc          `json:"shares" yaml:"shares"`
	Energy              EnergyDoc          `json:"energy_mj_per_day" yaml:"energy_mj_per_day"`
	Mass                MassDoc            `json:"fuel_mass" yaml:"fuel_mass"`
	Emissions           EmissionsDoc       `json:"emissions_t_co2_per_year" yaml:"emissions_t_co2_per_year"`
	Fields              map[string]float64 `json:"fields" yaml:"fields"`
	WithinAdvisoryRange bool               `json:"within_advisory_range" yaml:"within_advisory_range"`
}

// InputDoc mirrors emissions.Input.
type InputDoc struct {
	AmmoniaTonsPerDay float64 `json:"ammonia_tons_per_day" yaml:"ammonia_tons_per_day"`
	PilotSharePct     float64 `json:"pilot_share_pct" yaml:"pilot_share_pct"`
}

// SharesDoc mirrors emissions.Shares.
type SharesDoc struct {
	Ammonia float64 `json:"ammonia" yaml:"ammonia"`
	Pilot   float64 `json:"pilot" yaml:"pilot"`
}

// EnergyDoc mirrors emissions.EnergyBalance.
type EnergyDoc struct {
	Ammonia   float64 `json:"ammonia" yaml:"ammonia"`
	Total     float64 `json:"total" yaml:"total"`
	PilotFuel float64 `json:"pilot_fuel" yaml:"pilot_fuel"`
}

// MassDoc mirrors emissions.FuelMass.
type MassDoc struct {
	AmmoniaTonsPerYear      float64 `json:"ammonia_tons_per_year" yaml:"ammonia_tons_per_year"`
	PilotFuelKgPerDay       float64 `json:"pilot_fuel_kg_per_day" yaml:"pilot_fuel_kg_per_day"`
	PilotFuelTonsPerYear    float64 `json:"pilot_fuel_tons_per_year" yaml:"pilot_fuel_tons_per_year"`
	BaselineFuelKgPerDay    float64 `json:"baseline_fuel_kg_per_day" yaml:"baseline_fuel_kg_per_day"`
	BaselineFuelTonsPerYear float64 `json:"baseline_fuel_tons_per_year" yaml:"baseline_fuel_tons_per_year"`
}

// EmissionsDoc mirrors emissions.Emissions.
type EmissionsDoc struct {
	NH3Production      float64 `json:"nh3_production" yaml:"nh3_production"`
	PilotCombustion    float64 `json:"pilot_combustion" yaml:"pilot_combustion"`
	PilotUpstream      float64 `json:"pilot_upstream" yaml:"pilot_upstream"`
	TotalBlend         float64 `json:"total_blend" yaml:"total_blend"`
	BaselineCombustion float64 `json:"baseline_combustion" yaml:"baseline_combustion"`
	BaselineUpstream   float64 `json:"baseline_upstream" yaml:"baseline_upstream"`
	TotalBaseline      float64 `json:"total_baseline" yaml:"total_baseline"`
	Saved              float64 `json:"saved" yaml:"saved"`
	ReductionPct       float64 `json:"reduction_pct" yaml:"reduction_pct"`
}

// NewDocument converts a result, flagging whether its input lies inside the
// advisory range.
func NewDocument(r emissions.Result) Document {
	e := r.Emissions
	return Document{
		Input: InputDoc{
			AmmoniaTonsPerDay: r.Input.AmmoniaTonsPerDay,
			PilotSharePct:     r.Input.PilotSharePct,
		},
		Shares: SharesDoc{Ammonia: r.Shares.Ammonia, Pilot: r.Shares.Pilot},
		Energy: EnergyDoc{
			Ammonia:   r.Energy.AmmoniaMJPerDay,
			Total:     r.Energy.TotalMJPerDay,
			PilotFuel: r.Energy.PilotFuelMJPerDay,
		},
		Mass: MassDoc{
			AmmoniaTonsPerYear:      r.Mass.AmmoniaTonsPerYear,
			PilotFuelKgPerDay:       r.Mass.PilotFuelKgPerDay,
			PilotFuelTonsPerYear:    r.Mass.PilotFuelTonsPerYear,
			BaselineFuelKgPerDay:    r.Mass.BaselineFuelKgPerDay,
			BaselineFuelTonsPerYear: r.Mass.BaselineFuelTonsPerYear,
		},
		Emissions: EmissionsDoc{
			NH3Production:      e.NH3Production,
			PilotCombustion:    e.PilotCombustion,
			PilotUpstream:      e.PilotUpstream,
			TotalBlend:         e.TotalBlend,
			BaselineCombustion: e.BaselineCombustion,
			BaselineUpstream:   e.BaselineUpstream,
			TotalBaseline:      e.TotalBaseline,
			Saved:              e.Saved,
			ReductionPct:       e.ReductionPct,
		},
		Fields:              r.Map(),
		WithinAdvisoryRange: emissions.Advisory.Check(r.Input) == nil,
	}
}
