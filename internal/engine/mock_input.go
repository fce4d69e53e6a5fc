package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/Veraticus/smart-loan-advisor/internal/model"
)

// ErrMockExhausted is returned when a MockInputProvider runs out of scripted terms.
var ErrMockExhausted = errors.New("mock input exhausted")

// MockTerms is one scripted answer to the amount/tenure/frequency questions.
type MockTerms struct {
	Amount    float64
	Tenure    int
	Frequency model.RepaymentFrequency
}

// MockInputProvider is a test implementation of InputProvider that answers
// from a fixed profile and a queue of terms.
type MockInputProvider struct {
	Err          error
	Calls        []string
	Rejections   []error
	Terms        []MockTerms
	Profile      model.ApplicantProfile
	nextTerms    int
	currentTerms MockTerms
	mu           sync.Mutex
}

// NewMockInputProvider creates a provider that answers with profile and then
// each entry of terms in turn.
func NewMockInputProvider(profile model.ApplicantProfile, terms ...MockTerms) *MockInputProvider {
	return &MockInputProvider{
		Profile: profile,
		Terms:   terms,
	}
}

func (m *MockInputProvider) record(call string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
	return m.Err
}

// Called reports whether the named question was asked.
func (m *MockInputProvider) Called(call string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.Calls {
		if c == call {
			return true
		}
	}
	return false
}

// EmploymentStatus returns the scripted status.
func (m *MockInputProvider) EmploymentStatus(_ context.Context) (model.EmploymentStatus, error) {
	return m.Profile.EmploymentStatus, m.record("EmploymentStatus")
}

// NewBusiness returns the scripted flag.
func (m *MockInputProvider) NewBusiness(_ context.Context) (bool, error) {
	return m.Profile.IsNewBusiness, m.record("NewBusiness")
}

// BusinessType returns the scripted type.
func (m *MockInputProvider) BusinessType(_ context.Context) (model.BusinessType, error) {
	return m.Profile.BusinessType, m.record("BusinessType")
}

// PlannedInvestment returns the scripted investment.
func (m *MockInputProvider) PlannedInvestment(_ context.Context) (float64, error) {
	return m.Profile.PlannedInvestment, m.record("PlannedInvestment")
}

// AnnualIncome returns the scripted income.
func (m *MockInputProvider) AnnualIncome(_ context.Context) (float64, error) {
	return m.Profile.AnnualIncome, m.record("AnnualIncome")
}

// CreditScore returns the scripted score.
func (m *MockInputProvider) CreditScore(_ context.Context) (int, error) {
	return m.Profile.CreditScore, m.record("CreditScore")
}

// LoanAmount advances to the next scripted terms and returns their amount.
func (m *MockInputProvider) LoanAmount(_ context.Context, _ model.LoanBounds) (float64, error) {
	if err := m.record("LoanAmount"); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nextTerms >= len(m.Terms) {
		return 0, ErrMockExhausted
	}
	m.currentTerms = m.Terms[m.nextTerms]
	m.nextTerms++
	return m.currentTerms.Amount, nil
}

// Tenure returns the tenure of the current scripted terms.
func (m *MockInputProvider) Tenure(_ context.Context, _, _ int) (int, error) {
	err := m.record("Tenure")
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTerms.Tenure, err
}

// RepaymentFrequency returns the frequency of the current scripted terms,
// defaulting to monthly.
func (m *MockInputProvider) RepaymentFrequency(_ context.Context) (model.RepaymentFrequency, error) {
	err := m.record("RepaymentFrequency")
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.currentTerms.Frequency == 0 {
		return model.Monthly, err
	}
	return m.currentTerms.Frequency, err
}

// TermsRejected records the rejection.
func (m *MockInputProvider) TermsRejected(_ context.Context, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejections = append(m.Rejections, err)
	return nil
}

// MockReportSink is a test implementation of ReportSink that records every report.
type MockReportSink struct {
	Err         error
	Rejections  []model.AssessmentResult
	Eligibility []model.AssessmentResult
	Offers      []model.AssessmentResult
	mu          sync.Mutex
}

// ReportRejection records a rejection.
func (m *MockReportSink) ReportRejection(_ context.Context, result model.AssessmentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejections = append(m.Rejections, result)
	return m.Err
}

// ReportEligibility records an eligible assessment.
func (m *MockReportSink) ReportEligibility(_ context.Context, result model.AssessmentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Eligibility = append(m.Eligibility, result)
	return m.Err
}

// ReportOffer records an offer.
func (m *MockReportSink) ReportOffer(_ context.Context, result model.AssessmentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Offers = append(m.Offers, result)
	return m.Err
}
