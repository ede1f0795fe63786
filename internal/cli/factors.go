package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/ammonia-co2/internal/factors"
)

func newFactorsCmd(a *app) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Print the fuel factor catalogue",
		Example: `  # Built-in factors
  co2calc factors

  # Factors stored in a SQLite catalogue (created and seeded if missing)
  co2calc factors --db ./factors.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, listing, err := a.calculator(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			return writeFactors(cmd.OutOrStdout(), listing)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Read factors from this SQLite catalogue")

	return cmd
}

func writeFactors(out io.Writer, listing []factors.Factor) error {
	const tabPadding = 2
	w := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(w, "Fuel\tName\tStage\tValue\tUnit")
	fmt.Fprintln(w, "----\t----\t-----\t-----\t----")
	for _, f := range listing {
		fuel, name := f.Fuel, f.Name
		if fuel == "" {
			fuel, name = "-", "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", fuel, name, f.Stage, strconv.FormatFloat(f.Value, 'f', -1, 64), f.Unit)
	}
	return w.Flush()
}
