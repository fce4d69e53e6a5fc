package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmploymentStatus(t *testing.T) {
	tests := []struct {
		choice      int
		expected    EmploymentStatus
		name        string
		employed    bool
		expectError bool
	}{
		{name: "Salaried", choice: 1, expected: Salaried, employed: true},
		{name: "Self-Employed", choice: 2, expected: SelfEmployed, employed: true},
		{name: "Unemployed", choice: 3, expected: Unemployed},
		{name: "zero", choice: 0, expectError: true},
		{name: "four", choice: 4, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseEmploymentStatus(tt.choice)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.name, status.String())
			assert.Equal(t, tt.employed, status.IsEmployed())
		})
	}
}

func TestParseBusinessType(t *testing.T) {
	b, err := ParseBusinessType(1)
	require.NoError(t, err)
	assert.Equal(t, BusinessManufacturing, b)

	b, err = ParseBusinessType(2)
	require.NoError(t, err)
	assert.Equal(t, BusinessOther, b)

	_, err = ParseBusinessType(0)
	assert.Error(t, err)
}

func TestRepaymentFrequency(t *testing.T) {
	tests := []struct {
		choice int
		months int
		name   string
	}{
		{choice: 1, months: 1, name: "Monthly"},
		{choice: 2, months: 3, name: "Quarterly"},
		{choice: 3, months: 12, name: "Annual"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseRepaymentFrequency(tt.choice)
			require.NoError(t, err)
			assert.Equal(t, tt.months, f.MonthsPerPeriod())
			assert.Equal(t, tt.name, f.String())
		})
	}

	_, err := ParseRepaymentFrequency(4)
	assert.Error(t, err)
}

func TestApplicantProfile_IsManufacturing(t *testing.T) {
	assert.True(t, ApplicantProfile{IsNewBusiness: true, BusinessType: BusinessManufacturing}.IsManufacturing())
	assert.False(t, ApplicantProfile{IsNewBusiness: false, BusinessType: BusinessManufacturing}.IsManufacturing())
	assert.False(t, ApplicantProfile{IsNewBusiness: true, BusinessType: BusinessOther}.IsManufacturing())
}

func TestLoanBounds(t *testing.T) {
	b := LoanBounds{MinAmount: 50_000, MaxAmount: 2_000_000}
	assert.True(t, b.Valid())
	assert.True(t, b.Contains(50_000))
	assert.True(t, b.Contains(2_000_000))
	assert.False(t, b.Contains(49_999.99))
	assert.False(t, b.Contains(2_000_000.01))

	assert.False(t, LoanBounds{MinAmount: 50_000, MaxAmount: 25_000}.Valid())
}

func TestLoanTerms_Months(t *testing.T) {
	assert.Equal(t, 60, LoanTerms{TenureYears: 5}.Months())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 21493.9, Round2(21493.900378))
	assert.Equal(t, 0.13, Round2(0.125000001))
	assert.Equal(t, 100.0, Round2(99.999))
}
