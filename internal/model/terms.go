package model

import (
	"fmt"
	"math"
)

// RepaymentFrequency is how often the borrower pays.
type RepaymentFrequency int

// Repayment frequencies, numbered the way the interactive menu offers them.
const (
	Monthly   RepaymentFrequency = 1
	Quarterly RepaymentFrequency = 2
	Annual    RepaymentFrequency = 3
)

func (f RepaymentFrequency) String() string {
	switch f {
	case Monthly:
		return "Monthly"
	case Quarterly:
		return "Quarterly"
	case Annual:
		return "Annual"
	default:
		return fmt.Sprintf("RepaymentFrequency(%d)", int(f))
	}
}

// MonthsPerPeriod returns how many monthly installments one payment covers.
func (f RepaymentFrequency) MonthsPerPeriod() int {
	switch f {
	case Quarterly:
		return 3
	case Annual:
		return 12
	default:
		return 1
	}
}

// ParseRepaymentFrequency converts a menu choice into a RepaymentFrequency.
func ParseRepaymentFrequency(choice int) (RepaymentFrequency, error) {
	f := RepaymentFrequency(choice)
	switch f {
	case Monthly, Quarterly, Annual:
		return f, nil
	default:
		return 0, fmt.Errorf("invalid repayment frequency: %d", choice)
	}
}

// LoanTerms are the repayment terms of an approved loan.
// InterestRate is derived from the applicant profile and is never chosen by the user.
type LoanTerms struct {
	Amount       float64            `validate:"gt=0"`
	InterestRate float64            `validate:"gte=0"`
	TenureYears  int                `validate:"min=1,max=20"`
	Frequency    RepaymentFrequency `validate:"oneof=1 2 3"`
}

// Months returns the total number of monthly installments.
func (t LoanTerms) Months() int {
	return t.TenureYears * 12
}

// Installment is one row of an amortization schedule.
type Installment struct {
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Round2 rounds a value to two decimal places for display.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
