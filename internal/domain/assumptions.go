package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracketConfig is one marginal bracket of the income tax table.
// Max of zero means the bracket is open-ended.
type TaxBracketConfig struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// ContributionCategoryConfig is one social insurance branch. The employee
// pays half of CombinedRate on income up to MonthlyCeiling.
type ContributionCategoryConfig struct {
	Name           string          `yaml:"name" json:"name"`
	CombinedRate   decimal.Decimal `yaml:"combined_rate" json:"combinedRate"`
	MonthlyCeiling decimal.Decimal `yaml:"monthly_ceiling" json:"monthlyCeiling"`
}

// Assumptions bundles every versioned constant the engine uses. The
// built-in 2024 tables can be overridden wholesale from an assumptions
// file; individual calculations never mutate them.
type Assumptions struct {
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	PostRetirementReturn decimal.Decimal `yaml:"post_retirement_return" json:"postRetirementReturn"`
	SafeWithdrawalRate   decimal.Decimal `yaml:"safe_withdrawal_rate" json:"safeWithdrawalRate"`

	ReturnLowRisk    decimal.Decimal `yaml:"return_low_risk" json:"returnLowRisk"`
	ReturnMediumRisk decimal.Decimal `yaml:"return_medium_risk" json:"returnMediumRisk"`
	ReturnHighRisk   decimal.Decimal `yaml:"return_high_risk" json:"returnHighRisk"`

	TaxBrackets   []TaxBracketConfig           `yaml:"tax_brackets" json:"taxBrackets"`
	Contributions []ContributionCategoryConfig `yaml:"contributions" json:"contributions"`

	StatePensionReplacementRate decimal.Decimal `yaml:"state_pension_replacement_rate" json:"statePensionReplacementRate"`
	PensionDeductionCap         decimal.Decimal `yaml:"pension_deduction_cap" json:"pensionDeductionCap"`
}

// DefaultAssumptions returns the built-in 2024 constant tables.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		InflationRate:        decimal.NewFromFloat(0.02),
		PostRetirementReturn: decimal.NewFromFloat(0.04),
		SafeWithdrawalRate:   decimal.NewFromFloat(0.04),

		ReturnLowRisk:    decimal.NewFromFloat(0.04),
		ReturnMediumRisk: decimal.NewFromFloat(0.06),
		ReturnHighRisk:   decimal.NewFromFloat(0.08),

		TaxBrackets: []TaxBracketConfig{
			{Min: decimal.Zero, Max: decimal.NewFromInt(11604), Rate: decimal.Zero},
			{Min: decimal.NewFromInt(11604), Max: decimal.NewFromInt(17005), Rate: decimal.NewFromFloat(0.14)},
			{Min: decimal.NewFromInt(17005), Max: decimal.NewFromInt(66760), Rate: decimal.NewFromFloat(0.24)},
			{Min: decimal.NewFromInt(66760), Max: decimal.NewFromInt(277825), Rate: decimal.NewFromFloat(0.42)},
			{Min: decimal.NewFromInt(277825), Max: decimal.Zero, Rate: decimal.NewFromFloat(0.45)},
		},
		Contributions: []ContributionCategoryConfig{
			{Name: "pension", CombinedRate: decimal.NewFromFloat(0.186), MonthlyCeiling: decimal.NewFromInt(7550)},
			{Name: "health", CombinedRate: decimal.NewFromFloat(0.163), MonthlyCeiling: decimal.NewFromInt(5175)},
			{Name: "unemployment", CombinedRate: decimal.NewFromFloat(0.026), MonthlyCeiling: decimal.NewFromInt(7550)},
			{Name: "care", CombinedRate: decimal.NewFromFloat(0.034), MonthlyCeiling: decimal.NewFromInt(5175)},
		},

		StatePensionReplacementRate: decimal.NewFromFloat(0.48),
		PensionDeductionCap:         decimal.NewFromInt(27566),
	}
}

// ReturnForRisk maps a risk bucket to its expected annual return. Every
// validated profile carries one of the three defined buckets, so the
// default arm is unreachable in practice; it returns the conservative rate
// rather than a zero that would silently distort a projection.
func (a Assumptions) ReturnForRisk(rt RiskTolerance) decimal.Decimal {
	switch rt {
	case RiskLow:
		return a.ReturnLowRisk
	case RiskMedium:
		return a.ReturnMediumRisk
	case RiskHigh:
		return a.ReturnHighRisk
	default:
		return a.ReturnLowRisk
	}
}

// StatePensionMultiplier scales the state pension estimate by employment
// type. Civil servants have their own generous scheme; the self-employed
// and freelancers often contribute little or nothing to the state pot.
func StatePensionMultiplier(et EmploymentType) decimal.Decimal {
	switch et {
	case EmploymentCivilServant:
		return decimal.NewFromFloat(1.15)
	case EmploymentSelfEmployed:
		return decimal.NewFromFloat(0.6)
	case EmploymentFreelancer:
		return decimal.NewFromFloat(0.5)
	default:
		return decimal.NewFromInt(1)
	}
}

// ReplacementRatio maps a retirement goal to the fraction of current gross
// income desired in retirement.
func ReplacementRatio(goal RetirementGoal) decimal.Decimal {
	switch goal {
	case GoalModest:
		return decimal.NewFromFloat(0.60)
	case GoalLuxurious:
		return decimal.NewFromFloat(0.85)
	default:
		return decimal.NewFromFloat(0.75)
	}
}
