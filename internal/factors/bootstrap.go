package factors

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Simplici0/ammonia-co2/internal/db"
	"github.com/Simplici0/ammonia-co2/internal/emissions"
	"github.com/Simplici0/ammonia-co2/internal/migrations"
)

// Bootstrap opens the catalogue at dbPath, migrates and seeds it, and
// returns the loaded constants together with the catalogue listing.
func Bootstrap(ctx context.Context, dbPath string, logger *slog.Logger) (emissions.Constants, []Factor, error) {
	database, err := db.Open(ctx, dbPath)
	if err != nil {
		return emissions.Constants{}, nil, err
	}
	defer database.Close()

	applied, err := migrations.Up(ctx, database)
	if err != nil {
		return emissions.Constants{}, nil, err
	}
	for _, m := range applied {
		logger.Debug("applied migration", "source", m)
	}

	stats, err := Seed(ctx, database)
	if err != nil {
		return emissions.Constants{}, nil, fmt.Errorf("seed factor catalogue: %w", err)
	}
	if stats.Inserts > 0 {
		logger.Info("seeded factor catalogue", "inserts", stats.Inserts, "db_path", dbPath)
	}

	c, err := Load(ctx, database)
	if err != nil {
		return emissions.Constants{}, nil, fmt.Errorf("load factor catalogue: %w", err)
	}

	listing, err := List(ctx, database)
	if err != nil {
		return emissions.Constants{}, nil, fmt.Errorf("list factor catalogue: %w", err)
	}

	return c, listing, nil
}

// FromConstants lists c in the same shape as List, for the built-in table.
func FromConstants(c emissions.Constants) []Factor {
	return []Factor{
		{Fuel: FuelHFO, Name: "Heavy fuel oil", Stage: "lhv", Unit: "MJ/kg", Value: c.LHV.HFO},
		{Fuel: FuelMGO, Name: "Marine gas oil", Stage: "lhv", Unit: "MJ/kg", Value: c.LHV.MGO},
		{Fuel: FuelNH3, Name: "Ammonia", Stage: "lhv", Unit: "MJ/kg", Value: c.LHV.NH3},
		{Fuel: FuelHFO, Name: "Heavy fuel oil", Stage: StageCombustion, Unit: "t CO2/t", Value: c.EF.HFOCombustion},
		{Fuel: FuelHFO, Name: "Heavy fuel oil", Stage: StageUpstream, Unit: "t CO2/t", Value: c.EF.HFOUpstream},
		{Fuel: FuelMGO, Name: "Marine gas oil", Stage: StageCombustion, Unit: "t CO2/t", Value: c.EF.MGOCombustion},
		{Fuel: FuelMGO, Name: "Marine gas oil", Stage: StageUpstream, Unit: "t CO2/t", Value: c.EF.MGOUpstream},
		{Fuel: FuelNH3, Name: "Ammonia", Stage: StageProduction, Unit: "t CO2/t", Value: c.EF.NH3Production},
		{Stage: "days_per_year", Unit: "days", Value: c.DaysPerYear},
	}
}
