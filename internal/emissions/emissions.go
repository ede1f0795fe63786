package emissions

// Input is the pair of values a user controls on the calculator screen.
type Input struct {
	AmmoniaTonsPerDay float64
	PilotSharePct     float64
}

// Shares splits the total energy demand between ammonia and pilot fuel.
// Ammonia is derived as 1 - Pilot so the two always add up to exactly 1.
type Shares struct {
	Ammonia float64
	Pilot   float64
}

// EnergyBalance holds the daily energy quantities in MJ/day.
type EnergyBalance struct {
	AmmoniaMJPerDay   float64
	TotalMJPerDay     float64
	PilotFuelMJPerDay float64
}

// FuelMass holds daily and annual fuel masses. The baseline fuel is HFO
// delivering the same total energy as the blend.
type FuelMass struct {
	AmmoniaTonsPerYear      float64
	PilotFuelKgPerDay       float64
	PilotFuelTonsPerYear    float64
	BaselineFuelKgPerDay    float64
	BaselineFuelTonsPerYear float64
}

// Emissions holds annual CO₂ in tonnes/year, except ReductionPct.
type Emissions struct {
	NH3Production   float64
	PilotCombustion float64
	PilotUpstream   float64
	TotalBlend      float64

	BaselineCombustion float64
	BaselineUpstream   float64
	TotalBaseline      float64

	Saved        float64
	ReductionPct float64
}

// Result groups the full, unrounded output of one calculation.
type Result struct {
	Input     Input
	Shares    Shares
	Energy    EnergyBalance
	Mass      FuelMass
	Emissions Emissions
}

// Totals returns the blend and baseline annual totals, the pair compared on
// the results chart.
func (r Result) Totals() (blend, baseline float64) {
	return r.Emissions.TotalBlend, r.Emissions.TotalBaseline
}

// Calculator runs the formula chain against a fixed factor table.
type Calculator struct {
	constants Constants
}

// NewCalculator validates c and returns a Calculator bound to a copy of it.
func NewCalculator(c Constants) (*Calculator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{constants: c}, nil
}

var defaultCalculator = &Calculator{constants: DefaultConstants()}

// Compute runs the formula chain with DefaultConstants.
func Compute(in Input) (Result, error) {
	return defaultCalculator.Compute(in)
}

// Constants returns the factor table the calculator was built with.
func (c *Calculator) Constants() Constants {
	return c.constants
}

// Compute derives energy, fuel mass and emissions for in and compares the
// ammonia/pilot blend against an all-HFO baseline of equal energy.
func (c *Calculator) Compute(in Input) (Result, error) {
	if err := ValidateInput(in); err != nil {
		return Result{}, err
	}

	k := c.constants
	days := k.DaysPerYear

	pilotShare := in.PilotSharePct / 100.0
	ammoniaShare := 1.0 - pilotShare

	ammoniaEnergy := in.AmmoniaTonsPerDay * kgPerTonne * k.LHV.NH3
	totalEnergy := ammoniaEnergy / ammoniaShare
	pilotEnergy := totalEnergy * pilotShare

	pilotKgPerDay := pilotEnergy / k.LHV.MGO
	pilotTonsPerYear := (pilotKgPerDay / kgPerTonne) * days
	ammoniaTonsPerYear := in.AmmoniaTonsPerDay * days

	nh3Production := ammoniaTonsPerYear * k.EF.NH3Production
	pilotCombustion := pilotTonsPerYear * k.EF.MGOCombustion
	pilotUpstream := pilotTonsPerYear * k.EF.MGOUpstream
	totalBlend := nh3Production + pilotCombustion + pilotUpstream

	hfoKgPerDay := totalEnergy / k.LHV.HFO
	hfoTonsPerYear := (hfoKgPerDay / kgPerTonne) * days
	hfoCombustion := hfoTonsPerYear * k.EF.HFOCombustion
	hfoUpstream := hfoTonsPerYear * k.EF.HFOUpstream
	totalBaseline := hfoCombustion + hfoUpstream

	if totalBaseline == 0 {
		return Result{}, fieldError(ErrDegenerateBaseline, "total_baseline", totalBaseline, "cannot divide by zero")
	}

	saved := totalBaseline - totalBlend
	reductionPct := 100.0 * saved / totalBaseline

	return Result{
		Input: in,
		Shares: Shares{
			Ammonia: ammoniaShare,
			Pilot:   pilotShare,
		},
		Energy: EnergyBalance{
			AmmoniaMJPerDay:   ammoniaEnergy,
			TotalMJPerDay:     totalEnergy,
			PilotFuelMJPerDay: pilotEnergy,
		},
		Mass: FuelMass{
			AmmoniaTonsPerYear:      ammoniaTonsPerYear,
			PilotFuelKgPerDay:       pilotKgPerDay,
			PilotFuelTonsPerYear:    pilotTonsPerYear,
			BaselineFuelKgPerDay:    hfoKgPerDay,
			BaselineFuelTonsPerYear: hfoTonsPerYear,
		},
		Emissions: Emissions{
			NH3Production:      nh3Production,
			PilotCombustion:    pilotCombustion,
			PilotUpstream:      pilotUpstream,
			TotalBlend:         totalBlend,
			BaselineCombustion: hfoCombustion,
			BaselineUpstream:   hfoUpstream,
			TotalBaseline:      totalBaseline,
			Saved:              saved,
			ReductionPct:       reductionPct,
		},
	}, nil
}

// ValidateInput checks the domain of the formula chain: a positive ammonia
// rate and a pilot share in [0, 100).
func ValidateInput(in Input) error {
	if !isFinite(in.AmmoniaTonsPerDay) || in.AmmoniaTonsPerDay <= 0 {
		return fieldError(ErrInvalidInput, "ammonia_tons_per_day", in.AmmoniaTonsPerDay, "must be greater than 0")
	}
	if !isFinite(in.PilotSharePct) || in.PilotSharePct < 0 || in.PilotSharePct >= 100 {
		return fieldError(ErrInvalidInput, "pilot_share_pct", in.PilotSharePct, "must be in [0, 100)")
	}
	return nil
}
