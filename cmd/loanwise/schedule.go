package main

import (
	"fmt"

	"github.com/Veraticus/smart-loan-advisor/internal/cli"
	"github.com/Veraticus/smart-loan-advisor/internal/engine"
	"github.com/spf13/cobra"
)

func scheduleCmd() *cobra.Command {
	var flags calcFlags

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Show a year-by-year amortization schedule",
		Example: `  loanwise schedule --amount 1000000 --rate 10.5 --tenure 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loanEngine, err := newEngine()
			if err != nil {
				return err
			}

			terms, err := flags.terms(cmd, loanEngine)
			if err != nil {
				return err
			}

			installments, err := engine.Schedule(terms.Amount, terms.InterestRate, terms.TenureYears)
			if err != nil {
				return fmt.Errorf("failed to build schedule: %w", err)
			}

			return cli.NewReporter(cmd.OutOrStdout()).ReportSchedule(installments)
		},
	}

	flags.register(cmd)
	return cmd
}
