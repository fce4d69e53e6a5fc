package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/smart-loan-advisor/internal/cli"
	"github.com/Veraticus/smart-loan-advisor/internal/common"
	"github.com/Veraticus/smart-loan-advisor/internal/config"
	"github.com/Veraticus/smart-loan-advisor/internal/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Start an interactive loan application",
		Long: `Walk through a loan application interactively.

You'll be asked for:
  - Employment status
  - Whether the loan is for a new business, and its type and investment
  - Annual income and credit score
  - Desired amount, tenure and repayment frequency (if eligible)

Nothing you enter is stored.`,
		RunE: runApply,
	}
}

func runApply(cmd *cobra.Command, _ []string) error {
	loanEngine, err := newEngine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	handler := cli.NewInterruptHandler(out)
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	reporter := cli.NewReporter(out)
	if err := reporter.Banner(); err != nil {
		return err
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), out)
	result, err := engine.NewAdvisor(loanEngine, prompter, reporter).Run(ctx)
	if err != nil {
		if handler.WasInterrupted() {
			return common.NewUserError("Application cancelled", err)
		}
		return fmt.Errorf("loan application failed: %w", err)
	}

	slog.Debug("Application finished", "approved", result.Approved, "track", string(result.Track))
	return nil
}

func newEngine() (*engine.LoanEngine, error) {
	policy, err := config.LoadPolicy(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("Could not load loan policy", err)
	}
	return engine.New(policy), nil
}
