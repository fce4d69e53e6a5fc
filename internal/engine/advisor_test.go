package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/smart-loan-advisor/internal/config"
	"github.com/Veraticus/smart-loan-advisor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisor_Run(t *testing.T) {
	tests := []struct {
		name          string
		profile       model.ApplicantProfile
		terms         []MockTerms
		expectedCalls []string
		finalState    State
		approved      bool
		rejections    int
	}{
		{
			name:    "salaried applicant receives offer",
			profile: salaried(400_000, 720),
			terms:   []MockTerms{{Amount: 1_000_000, Tenure: 5, Frequency: model.Monthly}},
			expectedCalls: []string{
				"EmploymentStatus", "NewBusiness", "AnnualIncome", "CreditScore",
				"LoanAmount", "Tenure", "RepaymentFrequency",
			},
			finalState: StateReported,
			approved:   true,
		},
		{
			name:          "unemployed applicant is asked nothing else",
			profile:       model.ApplicantProfile{EmploymentStatus: model.Unemployed},
			expectedCalls: []string{"EmploymentStatus"},
			finalState:    StateRejected,
		},
		{
			name: "self-employed applicant below income floor",
			profile: model.ApplicantProfile{
				EmploymentStatus: model.SelfEmployed,
				AnnualIncome:     450_000,
				CreditScore:      800,
			},
			expectedCalls: []string{"EmploymentStatus", "NewBusiness", "AnnualIncome", "CreditScore"},
			finalState:    StateRejected,
		},
		{
			name:    "manufacturing applicant skips credit score",
			profile: manufacturer(12_000_000),
			terms:   []MockTerms{{Amount: 20_000_000, Tenure: 10, Frequency: model.Annual}},
			expectedCalls: []string{
				"EmploymentStatus", "NewBusiness", "BusinessType", "PlannedInvestment", "AnnualIncome",
				"LoanAmount", "Tenure", "RepaymentFrequency",
			},
			finalState: StateReported,
			approved:   true,
		},
		{
			name:    "out of range terms are asked again",
			profile: salaried(400_000, 720),
			terms: []MockTerms{
				{Amount: 3_000_000, Tenure: 5},
				{Amount: 1_000_000, Tenure: 25},
				{Amount: 1_000_000, Tenure: 5, Frequency: model.Quarterly},
			},
			expectedCalls: []string{
				"EmploymentStatus", "NewBusiness", "AnnualIncome", "CreditScore",
				"LoanAmount", "Tenure", "RepaymentFrequency",
				"LoanAmount", "Tenure", "RepaymentFrequency",
				"LoanAmount", "Tenure", "RepaymentFrequency",
			},
			finalState: StateReported,
			approved:   true,
			rejections: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := NewMockInputProvider(tt.profile, tt.terms...)
			sink := &MockReportSink{}
			advisor := NewAdvisor(New(config.DefaultPolicy()), input, sink)

			result, err := advisor.Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.approved, result.Approved)
			assert.Equal(t, tt.expectedCalls, input.Calls)
			assert.Equal(t, tt.finalState, advisor.Session().State())
			assert.True(t, advisor.Session().Terminal())
			assert.Len(t, input.Rejections, tt.rejections)

			if tt.approved {
				require.NotNil(t, result.Offer)
				assert.Len(t, sink.Eligibility, 1)
				assert.Len(t, sink.Offers, 1)
				assert.Empty(t, sink.Rejections)
			} else {
				assert.Nil(t, result.Offer)
				assert.Len(t, sink.Rejections, 1)
				assert.Empty(t, sink.Offers)
			}
		})
	}
}

func TestAdvisor_ManufacturingOffer(t *testing.T) {
	input := NewMockInputProvider(manufacturer(12_000_000),
		MockTerms{Amount: 20_000_000, Tenure: 10, Frequency: model.Annual})
	sink := &MockReportSink{}

	result, err := NewAdvisor(New(config.DefaultPolicy()), input, sink).Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Offer)
	assert.Equal(t, 7.0, result.Offer.Terms.InterestRate)
	assert.InDelta(t, result.Offer.EMI*12, result.Offer.PeriodicPayment, 1e-9)
	assert.NotEmpty(t, sink.Offers[0].Provisions)
}

func TestAdvisor_InputError(t *testing.T) {
	input := NewMockInputProvider(salaried(400_000, 720))
	input.Err = errors.New("stdin closed")

	_, err := NewAdvisor(New(config.DefaultPolicy()), input, &MockReportSink{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employment status")
}

func TestAdvisor_TermsExhausted(t *testing.T) {
	input := NewMockInputProvider(salaried(400_000, 720), MockTerms{Amount: 10, Tenure: 5})

	_, err := NewAdvisor(New(config.DefaultPolicy()), input, &MockReportSink{}).Run(context.Background())
	assert.ErrorIs(t, err, ErrMockExhausted)
}

func TestAdvisor_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := NewMockInputProvider(salaried(400_000, 720), MockTerms{Amount: 1_000_000, Tenure: 5})
	_, err := NewAdvisor(New(config.DefaultPolicy()), input, &MockReportSink{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdvisor_SinkError(t *testing.T) {
	sink := &MockReportSink{Err: errors.New("write failed")}
	input := NewMockInputProvider(model.ApplicantProfile{EmploymentStatus: model.Unemployed})

	_, err := NewAdvisor(New(config.DefaultPolicy()), input, sink).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to report rejection")
}
