// Package factors stores the fuel property catalogue (heating values,
// emission factors, year length) in SQLite and turns it into
// emissions.Constants.
package factors

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

// Fuel codes.
const (
	FuelNH3 = "NH3"
	FuelHFO = "HFO"
	FuelMGO = "MGO"
)

// Emission stages.
const (
	StageProduction = "production"
	StageCombustion = "combustion"
	StageUpstream   = "upstream"
)

type fuelSeed struct {
	code string
	name string
	lhv  float64
}

type factorSeed struct {
	fuel  string
	stage string
	value float64
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Seed inserts the reference factor table where rows are missing. Existing
// rows are never modified, so running it repeatedly is safe.
func Seed(ctx context.Context, db *sql.DB) (Stats, error) {
	return SeedConstants(ctx, db, emissions.DefaultConstants())
}

// SeedConstants is Seed with an explicit factor table.
func SeedConstants(ctx context.Context, db *sql.DB, c emissions.Constants) (Stats, error) {
	if err := c.Validate(); err != nil {
		return Stats{}, fmt.Errorf("validate seed constants: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	fuels := []fuelSeed{
		{FuelNH3, "Ammonia", c.LHV.NH3},
		{FuelHFO, "Heavy fuel oil", c.LHV.HFO},
		{FuelMGO, "Marine gas oil", c.LHV.MGO},
	}
	for _, f := range fuels {
		if err := ensureFuel(ctx, tx, f, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	factors := []factorSeed{
		{FuelNH3, StageProduction, c.EF.NH3Production},
		{FuelHFO, StageCombustion, c.EF.HFOCombustion},
		{FuelMGO, StageCombustion, c.EF.MGOCombustion},
		{FuelHFO, StageUpstream, c.EF.HFOUpstream},
		{FuelMGO, StageUpstream, c.EF.MGOUpstream},
	}
	for _, f := range factors {
		if err := ensureFactor(ctx, tx, f, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := ensureSettings(ctx, tx, c.DaysPerYear, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureFuel(ctx context.Context, tx *sql.Tx, f fuelSeed, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM fuels WHERE code = ? LIMIT 1)`, f.code).Scan(&exists); err != nil {
		return fmt.Errorf("check fuel %s existence: %w", f.code, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO fuels (code, name, lhv_mj_per_kg)
		VALUES (?, ?, ?)
	`, f.code, f.name, f.lhv); err != nil {
		return fmt.Errorf("insert fuel %s: %w", f.code, err)
	}
	stats.Inserts++
	return nil
}

func ensureFactor(ctx context.Context, tx *sql.Tx, f factorSeed, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1
			FROM emission_factors
			WHERE fuel_code = ? AND stage = ?
			LIMIT 1
		)
	`, f.fuel, f.stage).Scan(&exists); err != nil {
		return fmt.Errorf("check factor %s/%s existence: %w", f.fuel, f.stage, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO emission_factors (fuel_code, stage, t_co2_per_t)
		VALUES (?, ?, ?)
	`, f.fuel, f.stage, f.value); err != nil {
		return fmt.Errorf("insert factor %s/%s: %w", f.fuel, f.stage, err)
	}
	stats.Inserts++
	return nil
}

func ensureSettings(ctx context.Context, tx *sql.Tx, daysPerYear float64, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM calculation_settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check calculation settings existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO calculation_settings (id, days_per_year)
		VALUES (1, ?)
	`, daysPerYear); err != nil {
		return fmt.Errorf("insert calculation settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
