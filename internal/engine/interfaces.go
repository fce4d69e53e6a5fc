package engine

import (
	"context"

	"github.com/Veraticus/smart-loan-advisor/internal/model"
)

// InputProvider supplies applicant data. Implementations re-prompt until each
// value is within its domain, so the engine only sees valid primitives.
type InputProvider interface {
	EmploymentStatus(ctx context.Context) (model.EmploymentStatus, error)
	NewBusiness(ctx context.Context) (bool, error)
	BusinessType(ctx context.Context) (model.BusinessType, error)
	PlannedInvestment(ctx context.Context) (float64, error)
	AnnualIncome(ctx context.Context) (float64, error)
	CreditScore(ctx context.Context) (int, error)
	LoanAmount(ctx context.Context, bounds model.LoanBounds) (float64, error)
	Tenure(ctx context.Context, minYears, maxYears int) (int, error)
	RepaymentFrequency(ctx context.Context) (model.RepaymentFrequency, error)
	// TermsRejected tells the applicant why the requested terms were refused
	// before they are asked again.
	TermsRejected(ctx context.Context, err error) error
}

// ReportSink renders assessment outcomes.
type ReportSink interface {
	ReportRejection(ctx context.Context, result model.AssessmentResult) error
	ReportEligibility(ctx context.Context, result model.AssessmentResult) error
	ReportOffer(ctx context.Context, result model.AssessmentResult) error
}
