// Package report turns calculation results into rounded rows, delimited
// exports and comparison charts. The emissions package never rounds.
package report

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
)

// ExportFilename is the suggested name of the delimited export.
const ExportFilename = "co2_savings_results.csv"

//nolint:gochecknoglobals // message.Printer is safe for concurrent use.
var printer = message.NewPrinter(language.English)

// Row is a display-ready field.
type Row struct {
	Key       string
	Label     string
	Unit      string
	Value     float64
	Formatted string
}

// Rows returns the rounded result record in display order.
func Rows(result emissions.Result) []Row {
	fields := result.Fields()
	rows := make([]Row, 0, len(fields))
	for _, f := range fields {
		rounded := Round(f.Value, f.Precision)
		rows = append(rows, Row{
			Key:       f.Key,
			Label:     f.Label,
			Unit:      f.Unit,
			Value:     rounded,
			Formatted: FormatNumber(rounded, f.Precision),
		})
	}
	return rows
}

// Round rounds v to the given number of decimals, half away from zero.
func Round(v float64, precision int) float64 {
	if precision <= 0 {
		return math.Round(v)
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

// FormatNumber formats v with thousands separators and a fixed number of
// decimals, e.g. FormatNumber(1460000, 0) returns "1,460,000".
func FormatNumber(v float64, precision int) string {
	plain := plainNumber(v, precision)
	intPart, frac, hasFrac := strings.Cut(plain, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return plain
	}
	grouped := printer.Sprintf("%d", n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-0"
	}
	if hasFrac {
		return grouped + "." + frac
	}
	return grouped
}

// FormatTonnes formats a tonnage rounded to whole tonnes.
func FormatTonnes(v float64) string {
	return FormatNumber(v, 0)
}

// FormatPercent formats a percentage with one decimal and a % sign.
func FormatPercent(v float64) string {
	return FormatNumber(v, 1) + "%"
}

// plainNumber formats v without grouping, for machine-readable exports.
func plainNumber(v float64, precision int) string {
	return strconv.FormatFloat(Round(v, precision), 'f', max(precision, 0), 64)
}
