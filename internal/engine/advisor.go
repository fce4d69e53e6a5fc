package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/smart-loan-advisor/internal/model"
)

// Advisor drives one interactive session from input collection to report.
type Advisor struct {
	engine  *LoanEngine
	input   InputProvider
	sink    ReportSink
	session *Session
}

// NewAdvisor creates an advisor for a single session.
func NewAdvisor(engine *LoanEngine, input InputProvider, sink ReportSink) *Advisor {
	return &Advisor{
		engine:  engine,
		input:   input,
		sink:    sink,
		session: NewSession(),
	}
}

// Session exposes the state machine, mainly for inspection after Run.
func (a *Advisor) Session() *Session {
	return a.session
}

// Run collects the applicant's details, assesses them and reports the outcome.
// A rejection is a normal result, not an error.
func (a *Advisor) Run(ctx context.Context) (model.AssessmentResult, error) {
	profile, err := a.collectProfile(ctx)
	if err != nil {
		return model.AssessmentResult{}, err
	}

	result, err := a.engine.Assess(profile)
	if err != nil {
		return model.AssessmentResult{}, err
	}
	if err := a.session.Transition(StateClassified); err != nil {
		return result, err
	}

	slog.Info("Application assessed",
		"track", string(result.Track),
		"approved", result.Approved)

	if !result.Approved {
		if err := a.session.Transition(StateRejected); err != nil {
			return result, err
		}
		if err := a.sink.ReportRejection(ctx, result); err != nil {
			return result, fmt.Errorf("failed to report rejection: %w", err)
		}
		return result, nil
	}

	if err := a.session.Transition(StateEligible); err != nil {
		return result, err
	}
	if err := a.sink.ReportEligibility(ctx, result); err != nil {
		return result, fmt.Errorf("failed to report eligibility: %w", err)
	}

	offer, err := a.selectTerms(ctx, result)
	if err != nil {
		return result, err
	}
	result.Offer = &offer
	if err := a.session.Transition(StateTermsSelected); err != nil {
		return result, err
	}

	if err := a.sink.ReportOffer(ctx, result); err != nil {
		return result, fmt.Errorf("failed to report offer: %w", err)
	}
	if err := a.session.Transition(StateReported); err != nil {
		return result, err
	}

	slog.Info("Loan offer reported",
		"amount", offer.Terms.Amount,
		"rate", offer.Terms.InterestRate,
		"tenure_years", offer.Terms.TenureYears,
		"emi", model.Round2(offer.EMI))

	return result, nil
}

// collectProfile asks only the questions the applicant's answers make
// relevant: nothing after an unemployed status, no business type unless the
// loan is for a new business, and no credit score once the manufacturing
// track waives it.
func (a *Advisor) collectProfile(ctx context.Context) (model.ApplicantProfile, error) {
	var profile model.ApplicantProfile
	var err error

	if profile.EmploymentStatus, err = a.input.EmploymentStatus(ctx); err != nil {
		return profile, fmt.Errorf("failed to read employment status: %w", err)
	}
	if profile.EmploymentStatus == model.Unemployed {
		return profile, nil
	}

	if profile.IsNewBusiness, err = a.input.NewBusiness(ctx); err != nil {
		return profile, fmt.Errorf("failed to read new business flag: %w", err)
	}
	if profile.IsNewBusiness {
		if profile.BusinessType, err = a.input.BusinessType(ctx); err != nil {
			return profile, fmt.Errorf("failed to read business type: %w", err)
		}
		if profile.BusinessType == model.BusinessManufacturing {
			if profile.PlannedInvestment, err = a.input.PlannedInvestment(ctx); err != nil {
				return profile, fmt.Errorf("failed to read planned investment: %w", err)
			}
		}
	}

	if profile.AnnualIncome, err = a.input.AnnualIncome(ctx); err != nil {
		return profile, fmt.Errorf("failed to read annual income: %w", err)
	}

	if a.engine.Classify(profile) == model.TrackManufacturing {
		return profile, nil
	}

	if profile.CreditScore, err = a.input.CreditScore(ctx); err != nil {
		return profile, fmt.Errorf("failed to read credit score: %w", err)
	}

	return profile, nil
}

func (a *Advisor) selectTerms(ctx context.Context, result model.AssessmentResult) (model.LoanOffer, error) {
	policy := a.engine.Policy()

	for {
		if err := ctx.Err(); err != nil {
			return model.LoanOffer{}, err
		}

		amount, err := a.input.LoanAmount(ctx, result.Bounds)
		if err != nil {
			return model.LoanOffer{}, fmt.Errorf("failed to read loan amount: %w", err)
		}
		tenure, err := a.input.Tenure(ctx, policy.MinTenureYears, policy.MaxTenureYears)
		if err != nil {
			return model.LoanOffer{}, fmt.Errorf("failed to read tenure: %w", err)
		}
		frequency, err := a.input.RepaymentFrequency(ctx)
		if err != nil {
			return model.LoanOffer{}, fmt.Errorf("failed to read repayment frequency: %w", err)
		}

		offer, err := a.engine.Offer(result, amount, tenure, frequency)
		var termsErr *InvalidTermsError
		if errors.As(err, &termsErr) {
			slog.Debug("Requested terms rejected", "field", termsErr.Field, "value", termsErr.Value)
			if notifyErr := a.input.TermsRejected(ctx, termsErr); notifyErr != nil {
				return model.LoanOffer{}, notifyErr
			}
			continue
		}
		if err != nil {
			return model.LoanOffer{}, err
		}

		return offer, nil
	}
}
