package main

import (
	"github.com/Veraticus/smart-loan-advisor/internal/cli"
	"github.com/spf13/cobra"
)

func policyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Show the eligibility and pricing rules in effect",
		Long: `Show the eligibility and pricing rules in effect.

Rules come from the built-in defaults, overridden by the "policy" section of
the config file or LOANWISE_POLICY_* environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loanEngine, err := newEngine()
			if err != nil {
				return err
			}
			return cli.NewReporter(cmd.OutOrStdout()).ReportPolicy(loanEngine.Policy())
		},
	}
}
