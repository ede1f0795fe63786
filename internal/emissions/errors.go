package emissions

import (
	"fmt"
	"math"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors; compare with errors.Is.
var (
	// ErrInvalidInput reports an ammonia rate or pilot share outside the
	// domain where the formula chain is defined.
	ErrInvalidInput = constError("invalid input")

	// ErrDegenerateBaseline reports a zero HFO baseline, which would make
	// the reduction percentage undefined.
	ErrDegenerateBaseline = constError("degenerate baseline")

	// ErrInvalidConstants reports a factor table that cannot drive the
	// formula chain (non-positive heating value, negative factor, ...).
	ErrInvalidConstants = constError("invalid constants")

	// ErrOutsideAdvisoryRange reports inputs that are computable but fall
	// outside the range offered by the calculator screens.
	ErrOutsideAdvisoryRange = constError("outside advisory range")
)

// FieldError carries the offending field next to its sentinel.
type FieldError struct {
	Kind   error
	Field  string
	Value  float64
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", e.Kind, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Kind }

func fieldError(kind error, field string, value float64, reason string) error {
	return &FieldError{Kind: kind, Field: field, Value: value, Reason: reason}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
