package emissions

// Fuel properties used by the default calculator.
const (
	LHVAmmonia = 18.6 // MJ/kg NH₃
	LHVHFO     = 40.2 // MJ/kg heavy fuel oil
	LHVMGO     = 42.7 // MJ/kg marine gas oil

	EFAmmoniaProduction = 0.28  // t CO₂ / t NH₃ produced
	EFHFOCombustion     = 3.114 // t CO₂ / t HFO burned
	EFMGOCombustion     = 3.206 // t CO₂ / t MGO burned
	EFHFOUpstream       = 0.45  // t CO₂ / t HFO supplied
	EFMGOUpstream       = 0.45  // t CO₂ / t MGO supplied

	DaysPerYear = 365
)

const kgPerTonne = 1000.0

// HeatingValues holds lower heating values in MJ/kg.
type HeatingValues struct {
	NH3 float64
	HFO float64
	MGO float64
}

// EmissionFactors holds emission factors in tonnes CO₂ per tonne of fuel or product.
type EmissionFactors struct {
	NH3Production float64
	HFOCombustion float64
	MGOCombustion float64
	HFOUpstream   float64
	MGOUpstream   float64
}

// Constants groups every factor the formula chain reads. Values are copied
// into each Calculator, so a Constants value is never shared mutably.
type Constants struct {
	LHV         HeatingValues
	EF          EmissionFactors
	DaysPerYear float64
}

// DefaultConstants returns the reference factor table.
func DefaultConstants() Constants {
	return Constants{
		LHV: HeatingValues{
			NH3: LHVAmmonia,
			HFO: LHVHFO,
			MGO: LHVMGO,
		},
		EF: EmissionFactors{
			NH3Production: EFAmmoniaProduction,
			HFOCombustion: EFHFOCombustion,
			MGOCombustion: EFMGOCombustion,
			HFOUpstream:   EFHFOUpstream,
			MGOUpstream:   EFMGOUpstream,
		},
		DaysPerYear: DaysPerYear,
	}
}

// Validate reports whether every heating value and the year length are
// positive and every emission factor is non-negative.
func (c Constants) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"lhv.nh3", c.LHV.NH3},
		{"lhv.hfo", c.LHV.HFO},
		{"lhv.mgo", c.LHV.MGO},
		{"days_per_year", c.DaysPerYear},
	}
	for _, p := range positive {
		if !isFinite(p.value) || p.value <= 0 {
			return fieldError(ErrInvalidConstants, p.name, p.value, "must be greater than 0")
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"ef.nh3_production", c.EF.NH3Production},
		{"ef.hfo_combustion", c.EF.HFOCombustion},
		{"ef.mgo_combustion", c.EF.MGOCombustion},
		{"ef.hfo_upstream", c.EF.HFOUpstream},
		{"ef.mgo_upstream", c.EF.MGOUpstream},
	}
	for _, n := range nonNegative {
		if !isFinite(n.value) || n.value < 0 {
			return fieldError(ErrInvalidConstants, n.name, n.value, "must be 0 or greater")
		}
	}

	return nil
}
