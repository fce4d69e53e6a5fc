// Package engine implements loan eligibility, pricing and repayment calculations.
package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Veraticus/smart-loan-advisor/internal/config"
	"github.com/Veraticus/smart-loan-advisor/internal/model"
	"github.com/go-playground/validator/v10"
)

// Rejection reasons.
const (
	ReasonUnemployed       = "Unemployment status"
	ReasonIncomeTemplate   = "Insufficient annual income (minimum ₹%.0f)"
	ReasonCreditTemplate   = "Credit score below minimum (%d required)"
	ReasonDegenerateBounds = "Maximum eligible amount below minimum loan amount"
)

// LoanEngine evaluates applicants against a Policy. It holds no per-applicant
// state, so one engine can assess any number of profiles.
type LoanEngine struct {
	validate *validator.Validate
	policy   config.Policy
}

// New creates a loan engine for the given policy.
func New(policy config.Policy) *LoanEngine {
	return &LoanEngine{
		policy:   policy,
		validate: validator.New(),
	}
}

// Policy returns the rule set the engine applies.
func (e *LoanEngine) Policy() config.Policy {
	return e.policy
}

// Classify decides which rule set applies to the profile.
// Unemployment takes precedence over every business track.
func (e *LoanEngine) Classify(profile model.ApplicantProfile) model.Track {
	switch {
	case profile.EmploymentStatus == model.Unemployed:
		return model.TrackUnemployed
	case profile.IsManufacturing() && profile.PlannedInvestment >= e.policy.ManufacturingMinInvestment:
		return model.TrackManufacturing
	case profile.IsNewBusiness:
		return model.TrackNewBusiness
	default:
		return model.TrackGeneral
	}
}

// CheckEligibility returns every rule the profile violates, in rule order.
// An empty result means the applicant is eligible.
func (e *LoanEngine) CheckEligibility(profile model.ApplicantProfile) []string {
	reasons := []string{}

	switch e.Classify(profile) {
	case model.TrackUnemployed:
		return append(reasons, ReasonUnemployed)
	case model.TrackManufacturing:
		return reasons
	}

	if floor := e.policy.IncomeFloor(profile.EmploymentStatus); profile.AnnualIncome < floor {
		reasons = append(reasons, fmt.Sprintf(ReasonIncomeTemplate, floor))
	}
	if floor := e.policy.CreditFloor(profile.EmploymentStatus); profile.CreditScore < floor {
		reasons = append(reasons, fmt.Sprintf(ReasonCreditTemplate, floor))
	}

	return reasons
}

// ComputeBounds returns the loan amount range and interest rate for the profile.
// The range may be empty (MinAmount > MaxAmount) for very low incomes; callers
// must check LoanBounds.Valid.
func (e *LoanEngine) ComputeBounds(profile model.ApplicantProfile) model.LoanBounds {
	bounds := model.LoanBounds{
		MinAmount:    e.policy.MinLoanAmount,
		InterestRate: e.policy.BaseRate(profile.EmploymentStatus),
	}

	incomeLimit := profile.AnnualIncome * e.policy.IncomeMultiple(profile.EmploymentStatus)

	switch e.Classify(profile) {
	case model.TrackManufacturing:
		bounds.MaxAmount = e.policy.ManufacturingLoanCeiling
		bounds.InterestRate = e.policy.ManufacturingRate
	case model.TrackNewBusiness:
		bounds.MaxAmount = math.Min(incomeLimit, e.policy.NewBusinessLoanCeiling)
	case model.TrackUnemployed:
		bounds.MaxAmount = 0
	default:
		bounds.MaxAmount = math.Min(incomeLimit, e.policy.GeneralLoanCeiling)
	}

	return bounds
}

// Assess runs the full evaluation for a profile: classification, eligibility
// rules, bounds and advisory schemes. Rule violations are reported in the
// result, not as an error; an error means the profile itself is malformed.
func (e *LoanEngine) Assess(profile model.ApplicantProfile) (model.AssessmentResult, error) {
	if err := e.validate.Struct(profile); err != nil {
		return model.AssessmentResult{}, fmt.Errorf("invalid applicant profile: %w", err)
	}

	track := e.Classify(profile)
	result := model.AssessmentResult{
		Track:            track,
		RejectionReasons: e.CheckEligibility(profile),
	}

	if track != model.TrackUnemployed {
		result.Bounds = e.ComputeBounds(profile)
		if !result.Bounds.Valid() {
			result.RejectionReasons = append(result.RejectionReasons, ReasonDegenerateBounds)
		}
		result.Schemes = e.Schemes(profile)
		result.Provisions = e.Provisions(track)
	}

	result.Approved = len(result.RejectionReasons) == 0

	slog.Debug("Assessed applicant",
		"employment", profile.EmploymentStatus.String(),
		"track", string(track),
		"approved", result.Approved,
		"reasons", len(result.RejectionReasons))

	return result, nil
}

// Offer validates the requested terms against an approved assessment and
// computes the repayment plan. Out-of-range amount or tenure yields an
// *InvalidTermsError so the caller can ask again.
func (e *LoanEngine) Offer(result model.AssessmentResult, amount float64, tenureYears int, frequency model.RepaymentFrequency) (model.LoanOffer, error) {
	if !result.Approved {
		return model.LoanOffer{}, ErrNotEligible
	}

	bounds := result.Bounds
	if !bounds.Contains(amount) {
		return model.LoanOffer{}, &InvalidTermsError{
			Field: FieldAmount,
			Value: amount,
			Min:   bounds.MinAmount,
			Max:   bounds.MaxAmount,
		}
	}
	if tenureYears < e.policy.MinTenureYears || tenureYears > e.policy.MaxTenureYears {
		return model.LoanOffer{}, &InvalidTermsError{
			Field: FieldTenure,
			Value: float64(tenureYears),
			Min:   float64(e.policy.MinTenureYears),
			Max:   float64(e.policy.MaxTenureYears),
		}
	}

	terms := model.LoanTerms{
		Amount:       amount,
		InterestRate: bounds.InterestRate,
		TenureYears:  tenureYears,
		Frequency:    frequency,
	}
	if err := e.validate.Struct(terms); err != nil {
		return model.LoanOffer{}, fmt.Errorf("invalid loan terms: %w", err)
	}

	emi, err := ComputeEMI(terms.Amount, terms.InterestRate, terms.TenureYears)
	if err != nil {
		return model.LoanOffer{}, err
	}

	totalPayable := emi * float64(terms.Months())
	return model.LoanOffer{
		Terms:           terms,
		EMI:             emi,
		PeriodicPayment: ComputePeriodicPayment(emi, frequency),
		TotalPayable:    totalPayable,
		TotalInterest:   totalPayable - terms.Amount,
	}, nil
}
