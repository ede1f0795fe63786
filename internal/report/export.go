package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

// WriteCSV writes the rounded result record as a header row of field labels
// followed by a single value row.
func WriteCSV(w io.Writer, result emissions.Result) error {
	fields := result.Fields()
	header := make([]string, 0, len(fields))
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		header = append(header, f.Label)
		values = append(values, plainNumber(f.Value, f.Precision))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.Write(values); err != nil {
		return fmt.Errorf("write csv values: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
