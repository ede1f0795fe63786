// Package cli implements the co2calc command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
	"github.com/Simplici0/ammonia-co2/internal/factors"
	"github.com/Simplici0/ammonia-co2/internal/logging"
)

// app is the state shared by subcommands once flags are parsed.
type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCmd creates the co2calc root command with its subcommands.
func NewRootCmd(ver string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "co2calc",
		Short:         "Marine fuel CO₂ savings calculator",
		Long:          "Estimate annual CO₂ savings from replacing heavy fuel oil with ammonia and a pilot fuel.",
		Version:       ver,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch a.logFormat {
			case "text", "json":
			default:
				return fmt.Errorf("log-format must be text or json, got %q", a.logFormat)
			}
			a.logger = logging.New(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(
		newComputeCmd(a),
		newTUICmd(a),
		newFactorsCmd(a),
	)

	return cmd
}

// calculator builds a calculator from the built-in table, or from the
// SQLite catalogue at dbPath when it is set.
func (a *app) calculator(ctx context.Context, dbPath string) (*emissions.Calculator, []factors.Factor, error) {
	c := emissions.DefaultConstants()
	listing := factors.FromConstants(c)

	if dbPath != "" {
		var err error
		c, listing, err = factors.Bootstrap(ctx, dbPath, a.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("loading factor catalogue: %w", err)
		}
	}

	calc, err := emissions.NewCalculator(c)
	if err != nil {
		return nil, nil, err
	}
	return calc, listing, nil
}
