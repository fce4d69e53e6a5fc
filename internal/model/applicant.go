// Package model defines the core domain types for loan applications.
package model

import "fmt"

// EmploymentStatus identifies how the applicant earns an income.
type EmploymentStatus int

// Employment statuses, numbered the way the interactive menu offers them.
const (
	Salaried     EmploymentStatus = 1
	SelfEmployed EmploymentStatus = 2
	Unemployed   EmploymentStatus = 3
)

func (s EmploymentStatus) String() string {
	switch s {
	case Salaried:
		return "Salaried"
	case SelfEmployed:
		return "Self-Employed"
	case Unemployed:
		return "Unemployed"
	default:
		return fmt.Sprintf("EmploymentStatus(%d)", int(s))
	}
}

// IsEmployed reports whether income and credit score apply to this status.
func (s EmploymentStatus) IsEmployed() bool {
	return s == Salaried || s == SelfEmployed
}

// ParseEmploymentStatus converts a menu choice into an EmploymentStatus.
func ParseEmploymentStatus(choice int) (EmploymentStatus, error) {
	s := EmploymentStatus(choice)
	switch s {
	case Salaried, SelfEmployed, Unemployed:
		return s, nil
	default:
		return 0, fmt.Errorf("invalid employment status: %d", choice)
	}
}

// BusinessType classifies a new business venture.
type BusinessType int

// Business types. BusinessNone is used when the loan is not for a new business.
const (
	BusinessNone          BusinessType = 0
	BusinessManufacturing BusinessType = 1
	BusinessOther         BusinessType = 2
)

func (b BusinessType) String() string {
	switch b {
	case BusinessNone:
		return "None"
	case BusinessManufacturing:
		return "Manufacturing"
	case BusinessOther:
		return "Other"
	default:
		return fmt.Sprintf("BusinessType(%d)", int(b))
	}
}

// ParseBusinessType converts a menu choice into a BusinessType.
func ParseBusinessType(choice int) (BusinessType, error) {
	b := BusinessType(choice)
	switch b {
	case BusinessManufacturing, BusinessOther:
		return b, nil
	default:
		return 0, fmt.Errorf("invalid business type: %d", choice)
	}
}

// ApplicantProfile holds everything collected about an applicant in one session.
// CreditScore is zero when it was never collected, which is the case for
// unemployed applicants.
type ApplicantProfile struct {
	EmploymentStatus  EmploymentStatus `validate:"oneof=1 2 3"`
	BusinessType      BusinessType     `validate:"oneof=0 1 2"`
	AnnualIncome      float64          `validate:"gte=0"`
	PlannedInvestment float64          `validate:"gte=0"`
	CreditScore       int              `validate:"omitempty,min=300,max=900"`
	IsNewBusiness     bool
}

// IsManufacturing reports whether the profile describes a new manufacturing business.
func (p ApplicantProfile) IsManufacturing() bool {
	return p.IsNewBusiness && p.BusinessType == BusinessManufacturing
}
