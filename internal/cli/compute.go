package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
	"github.com/Simplici0/ammonia-co2/internal/report"
	"github.com/Simplici0/ammonia-co2/internal/tui"
)

// Output formats for compute.
const (
	OutputTable = "table"
	OutputCSV   = "csv"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

func newComputeCmd(a *app) *cobra.Command {
	var (
		in     = emissions.Advisory.Default
		output string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute annual emissions for one scenario",
		Example: `  # Default scenario
  co2calc compute

  # 2500 t/day of ammonia with a 10% pilot share, as YAML
  co2calc compute --ammonia 2500 --pilot 10 --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, _, err := a.calculator(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			if err := emissions.Advisory.Check(in); err != nil {
				a.logger.Warn("input outside the advisory range", "error", err)
			}

			result, err := calc.Compute(in)
			if err != nil {
				return fmt.Errorf("computing emissions: %w", err)
			}
			return writeResult(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().Float64Var(&in.AmmoniaTonsPerDay, "ammonia", in.AmmoniaTonsPerDay, "Ammonia production in tonnes per day")
	cmd.Flags().Float64Var(&in.PilotSharePct, "pilot", in.PilotSharePct, "Pilot fuel share of total energy in percent")
	cmd.Flags().StringVarP(&output, "output", "o", OutputTable, "Output format (table, csv, json, yaml)")
	cmd.Flags().StringVar(&dbPath, "db", "", "Load factors from this SQLite catalogue instead of the built-in table")

	return cmd
}

func writeResult(w io.Writer, output string, result emissions.Result) error {
	switch strings.ToLower(output) {
	case OutputTable:
		_, err := fmt.Fprintf(w, "Ammonia %s t/day, pilot share %s\n%s\n",
			report.FormatTonnes(result.Input.AmmoniaTonsPerDay),
			report.FormatPercent(result.Input.PilotSharePct),
			tui.RenderTable(report.Rows(result)))
		return err
	case OutputCSV:
		return report.WriteCSV(w, result)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report.NewDocument(result))
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report.NewDocument(result)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, output)
	}
}
