package factors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrMissingFactor reports a catalogue without a row the formula chain needs.
const ErrMissingFactor = constError("missing factor")

// Factor is one catalogue entry as listed by the CLI.
type Factor struct {
	Fuel  string
	Name  string
	Stage string
	Unit  string
	Value float64
}

// List returns every catalogue value: heating values first, then emission
// factors, then the year length.
func List(ctx context.Context, db *sql.DB) ([]Factor, error) {
	factors := make([]Factor, 0)

	rows, err := db.QueryContext(ctx, `
		SELECT code, name, lhv_mj_per_kg
		FROM fuels
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("query fuels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f := Factor{Stage: "lhv", Unit: "MJ/kg"}
		if err := rows.Scan(&f.Fuel, &f.Name, &f.Value); err != nil {
			return nil, fmt.Errorf("scan fuel: %w", err)
		}
		factors = append(factors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fuels: %w", err)
	}

	efRows, err := db.QueryContext(ctx, `
		SELECT ef.fuel_code, f.name, ef.stage, ef.t_co2_per_t
		FROM emission_factors ef
		JOIN fuels f ON f.code = ef.fuel_code
		ORDER BY ef.fuel_code, ef.stage
	`)
	if err != nil {
		return nil, fmt.Errorf("query emission factors: %w", err)
	}
	defer efRows.Close()

	for efRows.Next() {
		f := Factor{Unit: "t CO2/t"}
		if err := efRows.Scan(&f.Fuel, &f.Name, &f.Stage, &f.Value); err != nil {
			return nil, fmt.Errorf("scan emission factor: %w", err)
		}
		factors = append(factors, f)
	}
	if err := efRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate emission factors: %w", err)
	}

	days, err := daysPerYear(ctx, db)
	if err != nil {
		return nil, err
	}
	factors = append(factors, Factor{Stage: "days_per_year", Unit: "days", Value: days})

	return factors, nil
}

// Load reads the catalogue into a validated emissions.Constants.
func Load(ctx context.Context, db *sql.DB) (emissions.Constants, error) {
	var c emissions.Constants

	lhv := map[string]*float64{
		FuelNH3: &c.LHV.NH3,
		FuelHFO: &c.LHV.HFO,
		FuelMGO: &c.LHV.MGO,
	}
	for code, dst := range lhv {
		err := db.QueryRowContext(ctx, `SELECT lhv_mj_per_kg FROM fuels WHERE code = ?`, code).Scan(dst)
		if errors.Is(err, sql.ErrNoRows) {
			return emissions.Constants{}, fmt.Errorf("%w: lhv %s", ErrMissingFactor, code)
		}
		if err != nil {
			return emissions.Constants{}, fmt.Errorf("query lhv %s: %w", code, err)
		}
	}

	ef := []struct {
		fuel  string
		stage string
		dst   *float64
	}{
		{FuelNH3, StageProduction, &c.EF.NH3Production},
		{FuelHFO, StageCombustion, &c.EF.HFOCombustion},
		{FuelMGO, StageCombustion, &c.EF.MGOCombustion},
		{FuelHFO, StageUpstream, &c.EF.HFOUpstream},
		{FuelMGO, StageUpstream, &c.EF.MGOUpstream},
	}
	for _, f := range ef {
		err := db.QueryRowContext(ctx, `
			SELECT t_co2_per_t
			FROM emission_factors
			WHERE fuel_code = ? AND stage = ?
		`, f.fuel, f.stage).Scan(f.dst)
		if errors.Is(err, sql.ErrNoRows) {
			return emissions.Constants{}, fmt.Errorf("%w: %s %s", ErrMissingFactor, f.fuel, f.stage)
		}
		if err != nil {
			return emissions.Constants{}, fmt.Errorf("query factor %s/%s: %w", f.fuel, f.stage, err)
		}
	}

	days, err := daysPerYear(ctx, db)
	if err != nil {
		return emissions.Constants{}, err
	}
	c.DaysPerYear = days

	if err := c.Validate(); err != nil {
		return emissions.Constants{}, fmt.Errorf("validate catalogue: %w", err)
	}
	return c, nil
}

func daysPerYear(ctx context.Context, db *sql.DB) (float64, error) {
	var days float64
	err := db.QueryRowContext(ctx, `SELECT days_per_year FROM calculation_settings WHERE id = 1`).Scan(&days)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: days_per_year", ErrMissingFactor)
	}
	if err != nil {
		return 0, fmt.Errorf("query calculation settings: %w", err)
	}
	return days, nil
}
