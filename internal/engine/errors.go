package engine

import (
	"errors"
	"fmt"
	"strconv"
)

// Fields named by InvalidTermsError.
const (
	FieldAmount = "amount"
	FieldTenure = "tenure"
)

var (
	// ErrInvalidTransition is returned when a session moves to a state it cannot reach.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrNotEligible is returned when terms are requested for a rejected assessment.
	ErrNotEligible = errors.New("applicant is not eligible")
)

// InvalidTermsError reports a requested amount or tenure outside the range
// allowed for the applicant. Max is zero when only a lower bound applies.
type InvalidTermsError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidTermsError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%s %s is outside the allowed range %s to %s",
			e.Field, formatNumber(e.Value), formatNumber(e.Min), formatNumber(e.Max))
	}
	return fmt.Sprintf("%s %s must be at least %s", e.Field, formatNumber(e.Value), formatNumber(e.Min))
}

// DegenerateRateError signals a non-positive periodic rate reaching the
// amortization formula, where (1+r)^n - 1 would be zero.
type DegenerateRateError struct {
	MonthlyRate float64
}

func (e *DegenerateRateError) Error() string {
	return fmt.Sprintf("degenerate monthly rate %s", formatNumber(e.MonthlyRate))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
