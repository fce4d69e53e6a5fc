package engine

import (
	"errors"
	"log/slog"
	"math"

	"github.com/Veraticus/smart-loan-advisor/internal/model"
)

// ComputeEMI returns the equated monthly installment for a loan of amount at
// annualRatePercent over tenureYears, using the standard amortization formula:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1), r = rate/12/100, n = years*12
//
// A zero or negative rate degenerates to straight-line repayment, amount/n.
// The result is not rounded.
func ComputeEMI(amount, annualRatePercent float64, tenureYears int) (float64, error) {
	if tenureYears < 1 {
		return 0, &InvalidTermsError{Field: FieldTenure, Value: float64(tenureYears), Min: 1}
	}
	if amount < 0 {
		return 0, &InvalidTermsError{Field: FieldAmount, Value: amount, Min: 0}
	}

	months := tenureYears * 12
	emi, err := amortizedInstallment(amount, annualRatePercent/12/100, months)

	var degenerate *DegenerateRateError
	if errors.As(err, &degenerate) {
		slog.Debug("Non-positive rate, using straight-line installment",
			"annual_rate", annualRatePercent, "months", months)
		return amount / float64(months), nil
	}

	return emi, err
}

func amortizedInstallment(principal, monthlyRate float64, months int) (float64, error) {
	if monthlyRate <= 0 {
		return 0, &DegenerateRateError{MonthlyRate: monthlyRate}
	}

	growth := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * growth / (growth - 1), nil
}

// ComputePeriodicPayment converts a monthly installment into the payment due
// at the chosen frequency. Interest is not compounded across the period.
func ComputePeriodicPayment(emi float64, frequency model.RepaymentFrequency) float64 {
	return emi * float64(frequency.MonthsPerPeriod())
}

// Schedule builds the month-by-month amortization table for a loan.
// The final installment absorbs floating-point drift so the closing balance is zero.
func Schedule(amount, annualRatePercent float64, tenureYears int) ([]model.Installment, error) {
	emi, err := ComputeEMI(amount, annualRatePercent, tenureYears)
	if err != nil {
		return nil, err
	}

	monthlyRate := math.Max(annualRatePercent, 0) / 12 / 100
	months := tenureYears * 12
	installments := make([]model.Installment, 0, months)
	balance := amount

	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		principal := emi - interest
		payment := emi
		if month == months {
			principal = balance
			payment = principal + interest
		}
		balance -= principal
		if month == months {
			balance = 0
		}

		installments = append(installments, model.Installment{
			Month:     month,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return installments, nil
}
