package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/smart-loan-advisor/internal/cli"
	"github.com/Veraticus/smart-loan-advisor/internal/common"
	"github.com/Veraticus/smart-loan-advisor/internal/engine"
	"github.com/Veraticus/smart-loan-advisor/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

type calcFlags struct {
	frequency string
	amount    float64
	rate      float64
	tenure    int
}

func (f *calcFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "loan amount in rupees (required)")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "annual interest rate in percent (default: salaried rate from policy)")
	cmd.Flags().IntVar(&f.tenure, "tenure", 5, "tenure in years")
	_ = cmd.MarkFlagRequired("amount")
}

// terms validates the flags and resolves the default rate from the policy.
func (f *calcFlags) terms(cmd *cobra.Command, loanEngine *engine.LoanEngine) (model.LoanTerms, error) {
	frequency, err := parseFrequency(f.frequency)
	if err != nil {
		return model.LoanTerms{}, err
	}

	rate := f.rate
	if !cmd.Flags().Changed("rate") {
		rate = loanEngine.Policy().SalariedRate
	}

	terms := model.LoanTerms{
		Amount:       f.amount,
		InterestRate: rate,
		TenureYears:  f.tenure,
		Frequency:    frequency,
	}
	if err := validator.New().Struct(terms); err != nil {
		return model.LoanTerms{}, common.NewUserError(
			"Amount must be positive, rate non-negative and tenure between 1 and 20 years", err)
	}
	return terms, nil
}

func emiCmd() *cobra.Command {
	var flags calcFlags

	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Calculate the EMI for a loan without an eligibility check",
		Example: `  loanwise emi --amount 1000000 --rate 10.5 --tenure 5
  loanwise emi --amount 2500000 --tenure 10 --frequency quarterly`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loanEngine, err := newEngine()
			if err != nil {
				return err
			}

			terms, err := flags.terms(cmd, loanEngine)
			if err != nil {
				return err
			}

			emi, err := engine.ComputeEMI(terms.Amount, terms.InterestRate, terms.TenureYears)
			if err != nil {
				return fmt.Errorf("failed to compute EMI: %w", err)
			}

			total := emi * float64(terms.Months())
			result := model.AssessmentResult{
				Offer: &model.LoanOffer{
					Terms:           terms,
					EMI:             emi,
					PeriodicPayment: engine.ComputePeriodicPayment(emi, terms.Frequency),
					TotalPayable:    total,
					TotalInterest:   total - terms.Amount,
				},
			}
			return cli.NewReporter(cmd.OutOrStdout()).ReportOffer(cmd.Context(), result)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.frequency, "frequency", "monthly", "repayment frequency (monthly, quarterly, annual)")

	return cmd
}

func parseFrequency(name string) (model.RepaymentFrequency, error) {
	switch strings.ToLower(name) {
	case "monthly", "":
		return model.Monthly, nil
	case "quarterly":
		return model.Quarterly, nil
	case "annual", "annually", "yearly":
		return model.Annual, nil
	default:
		return 0, common.NewUserError(
			fmt.Sprintf("Unknown frequency %q (use monthly, quarterly or annual)", name), nil)
	}
}
