package engine

import (
	"fmt"

	"github.com/Veraticus/smart-loan-advisor/internal/model"
)

// Schemes lists the government programs the applicant may qualify for.
// They are advisory only and never affect eligibility.
func (e *LoanEngine) Schemes(profile model.ApplicantProfile) []model.Scheme {
	p := e.policy
	schemes := []model.Scheme{}

	if profile.IsManufacturing() {
		schemes = append(schemes,
			model.Scheme{
				Name: "Credit-Linked Capital Subsidy (CLCSS)",
				Description: fmt.Sprintf("%.0f%% capital subsidy on investments of ₹%.0f or more",
					p.CapitalSubsidyPercent, p.ManufacturingMinInvestment),
			},
			model.Scheme{
				Name:        "Make in India Interest Subsidy",
				Description: fmt.Sprintf("%.0f%% interest rebate", p.InterestSubsidyPercent),
			},
			model.Scheme{
				Name:        "Industrial Park Allocation Priority",
				Description: "Priority land allocation for new manufacturing units",
			},
		)
	}

	if profile.EmploymentStatus.IsEmployed() && profile.AnnualIncome < p.LowIncomeSchemeThreshold {
		schemes = append(schemes, model.Scheme{
			Name: "Special Government Loan",
			Description: fmt.Sprintf("₹%.0f at %.0f%% interest for annual incomes below ₹%.0f",
				p.LowIncomeSchemeAmount, p.LowIncomeSchemeRate, p.LowIncomeSchemeThreshold),
		})
	}

	return schemes
}

// Provisions lists the special terms attached to a track. Only the
// manufacturing track carries any.
func (e *LoanEngine) Provisions(track model.Track) []string {
	if track != model.TrackManufacturing {
		return nil
	}

	p := e.policy
	return []string{
		fmt.Sprintf("Eligible for %.0f%% capital subsidy (CLCSS Scheme)", p.CapitalSubsidyPercent),
		"Priority land allocation through Make in India initiative",
		fmt.Sprintf("Interest rate capped at %.1f%%", p.ManufacturingRate),
		fmt.Sprintf("GST reimbursement for first %d years", p.GSTReimbursementYears),
		fmt.Sprintf("Minimum investment: ₹%.0f", p.ManufacturingMinInvestment),
	}
}
