package domain

import (
	"github.com/shopspring/decimal"
)

// RiskTolerance classifies the investor's appetite for volatility. The
// public API also accepts a 1-10 numeric scale; it is normalized to one of
// these three buckets during validation and never carried further.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

// EmploymentType affects the income security score and the state pension
// estimate.
type EmploymentType string

const (
	EmploymentEmployed     EmploymentType = "employed"
	EmploymentSelfEmployed EmploymentType = "self-employed"
	EmploymentCivilServant EmploymentType = "civil-servant"
	EmploymentFreelancer   EmploymentType = "freelancer"
)

// Gender is optional input; it only feeds the life expectancy estimate.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// RetirementGoal maps to a replacement ratio of current gross income.
type RetirementGoal string

const (
	GoalModest      RetirementGoal = "modest"
	GoalComfortable RetirementGoal = "comfortable"
	GoalLuxurious   RetirementGoal = "luxurious"
)

// FinancialProfile is the fully validated, fully defaulted input to a
// calculation. Instances are produced by config.ValidateRaw and are never
// mutated afterwards; every optional field has been resolved to a concrete
// value by the time a profile reaches the engine.
type FinancialProfile struct {
	Age           int    `yaml:"age" json:"age"`
	RetirementAge int    `yaml:"retirement_age" json:"retirementAge"`
	Gender        Gender `yaml:"gender,omitempty" json:"gender,omitempty"`

	GrossMonthlyIncome decimal.Decimal `yaml:"gross_monthly_income" json:"grossMonthlyIncome"`
	CurrentSavings     decimal.Decimal `yaml:"current_savings" json:"currentSavings"`
	MonthlySavings     decimal.Decimal `yaml:"monthly_savings" json:"monthlySavings"`

	RiskTolerance  RiskTolerance  `yaml:"risk_tolerance" json:"riskTolerance"`
	EmploymentType EmploymentType `yaml:"employment_type" json:"employmentType"`

	HasAdditionalIncome    bool            `yaml:"has_additional_income" json:"hasAdditionalIncome"`
	AdditionalIncomeAmount decimal.Decimal `yaml:"additional_income_amount" json:"additionalIncomeAmount"`
	HasPropertyInvestments bool            `yaml:"has_property_investments" json:"hasPropertyInvestments"`
	PropertyValue          decimal.Decimal `yaml:"property_value" json:"propertyValue"`
	HasPrivatePension      bool            `yaml:"has_private_pension" json:"hasPrivatePension"`
	PrivatePensionValue    decimal.Decimal `yaml:"private_pension_value" json:"privatePensionValue"`
	IsExpat                bool            `yaml:"is_expat" json:"isExpat"`
	HasForeignIncome       bool            `yaml:"has_foreign_income" json:"hasForeignIncome"`
	DebtLevel              decimal.Decimal `yaml:"debt_level" json:"debtLevel"`

	YearsInGermany    int  `yaml:"years_in_germany" json:"yearsInGermany"`
	GermanCitizenship bool `yaml:"german_citizenship" json:"germanCitizenship"`

	// DesiredMonthlyIncome is always concrete here: either supplied by the
	// user, derived from RetirementGoal, or defaulted to 70% of gross
	// monthly income at validation time.
	DesiredMonthlyIncome decimal.Decimal `yaml:"desired_monthly_income" json:"desiredMonthlyIncome"`
	RetirementGoal       RetirementGoal  `yaml:"retirement_goal,omitempty" json:"retirementGoal,omitempty"`
}

// YearsToRetirement is at least 1 for any validated profile because
// validation enforces RetirementAge > Age.
func (p *FinancialProfile) YearsToRetirement() int {
	return p.RetirementAge - p.Age
}

// AnnualIncome derives gross annual income from the monthly figure.
func (p *FinancialProfile) AnnualIncome() decimal.Decimal {
	return p.GrossMonthlyIncome.Mul(decimal.NewFromInt(12))
}

// LifeExpectancy returns the assumed life expectancy in years based on the
// optional gender field.
func (p *FinancialProfile) LifeExpectancy() int {
	switch p.Gender {
	case GenderMale:
		return 78
	case GenderFemale:
		return 83
	default:
		return 81
	}
}

// YearsInRetirement is the expected retirement duration, floored at one
// year so annuity math never sees a zero horizon.
func (p *FinancialProfile) YearsInRetirement() int {
	years := p.LifeExpectancy() - p.RetirementAge
	if years < 1 {
		years = 1
	}
	return years
}

// ValidRiskTolerances lists the accepted enum values, in display order.
func ValidRiskTolerances() []RiskTolerance {
	return []RiskTolerance{RiskLow, RiskMedium, RiskHigh}
}

// ValidEmploymentTypes lists the accepted enum values, in display order.
func ValidEmploymentTypes() []EmploymentType {
	return []EmploymentType{EmploymentEmployed, EmploymentSelfEmployed, EmploymentCivilServant, EmploymentFreelancer}
}
