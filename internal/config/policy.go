package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Veraticus/smart-loan-advisor/internal/common"
	"github.com/Veraticus/smart-loan-advisor/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Policy is the single table of thresholds, rates and ceilings used by the loan engine.
// Rates are percentages per annum.
type Policy struct {
	SalariedIncomeFloor        float64 `mapstructure:"salaried_income_floor" validate:"gte=0"`
	SelfEmployedIncomeFloor    float64 `mapstructure:"self_employed_income_floor" validate:"gte=0"`
	SalariedCreditFloor        int     `mapstructure:"salaried_credit_floor" validate:"min=300,max=900"`
	SelfEmployedCreditFloor    int     `mapstructure:"self_employed_credit_floor" validate:"min=300,max=900"`
	SalariedRate               float64 `mapstructure:"salaried_rate" validate:"gte=0,lte=100"`
	SelfEmployedRate           float64 `mapstructure:"self_employed_rate" validate:"gte=0,lte=100"`
	ManufacturingRate          float64 `mapstructure:"manufacturing_rate" validate:"gte=0,lte=100"`
	SalariedIncomeMultiple     float64 `mapstructure:"salaried_income_multiple" validate:"gt=0"`
	SelfEmployedIncomeMultiple float64 `mapstructure:"self_employed_income_multiple" validate:"gt=0"`
	MinLoanAmount              float64 `mapstructure:"min_loan_amount" validate:"gt=0"`
	GeneralLoanCeiling         float64 `mapstructure:"general_loan_ceiling" validate:"gtefield=MinLoanAmount"`
	NewBusinessLoanCeiling     float64 `mapstructure:"new_business_loan_ceiling" validate:"gtefield=GeneralLoanCeiling"`
	ManufacturingLoanCeiling   float64 `mapstructure:"manufacturing_loan_ceiling" validate:"gtefield=NewBusinessLoanCeiling"`
	ManufacturingMinInvestment float64 `mapstructure:"manufacturing_min_investment" validate:"gt=0"`
	MinTenureYears             int     `mapstructure:"min_tenure_years" validate:"min=1"`
	MaxTenureYears             int     `mapstructure:"max_tenure_years" validate:"gtefield=MinTenureYears,max=20"`

	// Advisory schemes.
	CapitalSubsidyPercent      float64 `mapstructure:"capital_subsidy_percent" validate:"gte=0,lte=100"`
	InterestSubsidyPercent     float64 `mapstructure:"interest_subsidy_percent" validate:"gte=0,lte=100"`
	GSTReimbursementYears      int     `mapstructure:"gst_reimbursement_years" validate:"gte=0"`
	LowIncomeSchemeThreshold   float64 `mapstructure:"low_income_scheme_threshold" validate:"gte=0"`
	LowIncomeSchemeAmount      float64 `mapstructure:"low_income_scheme_amount" validate:"gte=0"`
	LowIncomeSchemeRate        float64 `mapstructure:"low_income_scheme_rate" validate:"gte=0,lte=100"`
}

// DefaultPolicy returns the built-in rule set.
func DefaultPolicy() Policy {
	return Policy{
		SalariedIncomeFloor:        300_000,
		SelfEmployedIncomeFloor:    500_000,
		SalariedCreditFloor:        700,
		SelfEmployedCreditFloor:    750,
		SalariedRate:               10.5,
		SelfEmployedRate:           12.0,
		ManufacturingRate:          7.0,
		SalariedIncomeMultiple:     5,
		SelfEmployedIncomeMultiple: 4,
		MinLoanAmount:              50_000,
		GeneralLoanCeiling:         5_000_000,
		NewBusinessLoanCeiling:     10_000_000,
		ManufacturingLoanCeiling:   50_000_000,
		ManufacturingMinInvestment: 10_000_000,
		MinTenureYears:             1,
		MaxTenureYears:             20,

		CapitalSubsidyPercent:    15,
		InterestSubsidyPercent:   2,
		GSTReimbursementYears:    3,
		LowIncomeSchemeThreshold: 300_000,
		LowIncomeSchemeAmount:    50_000,
		LowIncomeSchemeRate:      1,
	}
}

// IncomeFloor returns the minimum annual income for an employment status.
func (p Policy) IncomeFloor(status model.EmploymentStatus) float64 {
	if status == model.SelfEmployed {
		return p.SelfEmployedIncomeFloor
	}
	return p.SalariedIncomeFloor
}

// CreditFloor returns the minimum credit score for an employment status.
func (p Policy) CreditFloor(status model.EmploymentStatus) int {
	if status == model.SelfEmployed {
		return p.SelfEmployedCreditFloor
	}
	return p.SalariedCreditFloor
}

// BaseRate returns the general interest rate for an employment status.
func (p Policy) BaseRate(status model.EmploymentStatus) float64 {
	if status == model.SelfEmployed {
		return p.SelfEmployedRate
	}
	return p.SalariedRate
}

// IncomeMultiple returns how many times annual income may be borrowed.
func (p Policy) IncomeMultiple(status model.EmploymentStatus) float64 {
	if status == model.SelfEmployed {
		return p.SelfEmployedIncomeMultiple
	}
	return p.SalariedIncomeMultiple
}

// Validate checks field ranges and the ordering of the loan ceilings.
func (p Policy) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: policy fields out of range: %s", common.ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return nil
}

// LoadPolicy loads the policy from Viper. Every key under "policy" starts from
// DefaultPolicy and can be overridden by the config file or by a
// LOANWISE_POLICY_<KEY> environment variable.
func LoadPolicy(v *viper.Viper) (Policy, error) {
	if v == nil {
		v = viper.GetViper()
	}

	defaults := DefaultPolicy()
	rv := reflect.ValueOf(defaults)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		key := "policy." + rt.Field(i).Tag.Get("mapstructure")
		v.SetDefault(key, rv.Field(i).Interface())
		if err := v.BindEnv(key); err != nil {
			return Policy{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var wrapper struct {
		Policy Policy `mapstructure:"policy"`
	}
	if err := v.Unmarshal(&wrapper); err != nil {
		return Policy{}, fmt.Errorf("failed to decode policy: %w", err)
	}

	if err := wrapper.Policy.Validate(); err != nil {
		return Policy{}, err
	}

	return wrapper.Policy, nil
}
