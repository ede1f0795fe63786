package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Simplici0/ammonia-co2/internal/emissions"
	"github.com/Simplici0/ammonia-co2/internal/report"
)

type baseViewData struct {
	ErrorMessage string
}

type homeViewData struct {
	baseViewData
	Form           formValues
	Range          emissions.AdvisoryRange
	HasResult      bool
	Rows           []report.Row
	Bars           []report.Bar
	ChartURL       string
	ExportURL      string
	ExportFilename string
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	form := readFormValues(r.URL.Query())
	data := homeViewData{
		Form:           form,
		Range:          emissions.Advisory,
		ChartURL:       "/chart.svg?" + form.query(),
		ExportURL:      "/export.csv?" + form.query(),
		ExportFilename: report.ExportFilename,
	}

	result, err := s.compute(form, true)
	if err != nil {
		data.ErrorMessage = err.Error()
		s.renderTemplate(w, "home.html", statusFor(err), data)
		return
	}

	data.HasResult = true
	data.Rows = report.Rows(result)
	data.Bars = report.Comparison(result)
	s.renderTemplate(w, "home.html", http.StatusOK, data)
}

func (s *server) handleChart(w http.ResponseWriter, r *http.Request) {
	result, err := s.compute(readFormValues(r.URL.Query()), true)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := report.WriteChartSVG(&buf, result); err != nil {
		s.logger.Error("render chart", "error", err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleExport(w http.ResponseWriter, r *http.Request) {
	result, err := s.compute(readFormValues(r.URL.Query()), true)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, result); err != nil {
		s.logger.Error("write csv", "error", err)
		http.Error(w, "failed to export results", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.ExportFilename+`"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleAPICompute(w http.ResponseWriter, r *http.Request) {
	result, err := s.compute(readFormValues(r.URL.Query()), false)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, report.NewDocument(result))
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) compute(form formValues, advisory bool) (emissions.Result, error) {
	in, err := parseInput(form, advisory)
	if err != nil {
		return emissions.Result{}, err
	}
	return s.calc.Compute(in)
}

// statusFor maps calculator errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, emissions.ErrInvalidInput), errors.Is(err, emissions.ErrOutsideAdvisoryRange):
		return http.StatusBadRequest
	case errors.Is(err, emissions.ErrDegenerateBaseline):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
