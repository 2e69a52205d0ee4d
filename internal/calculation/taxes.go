package calculation

import (
	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax: simplified 2024 progressive bracket table. The statutory
//    German tariff is a quadratic formula inside the progression zones; the
//    bracket table here approximates it with fixed marginal rates, which is
//    what the readiness score needs. The basic allowance (EUR 11,604) is
//    modeled as a 0% bracket rather than a deduction.
//
// 2. Social security: employee side only, half the combined rate per
//    branch, income clamped at each branch's monthly ceiling (2024 West
//    values). Health includes the average Zusatzbeitrag; care uses the
//    base rate.
//
// 3. No inflation indexing of brackets or ceilings across projection years.

// TaxBracket is one marginal bracket. An open-ended bracket has max zero.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// ContributionCategory is one social insurance branch on the employee side.
type ContributionCategory struct {
	Name           string
	CombinedRate   decimal.Decimal
	MonthlyCeiling decimal.Decimal
}

// GermanTaxCalculator computes income tax and social security contributions
// from the fixed constant tables. It is stateless after construction and
// safe for concurrent use.
type GermanTaxCalculator struct {
	Year          int
	Brackets      []TaxBracket
	Contributions []ContributionCategory
}

// NewGermanTaxCalculator2024 creates a calculator with the built-in 2024
// tables.
func NewGermanTaxCalculator2024() *GermanTaxCalculator {
	return NewGermanTaxCalculator(domain.DefaultAssumptions())
}

// NewGermanTaxCalculator creates a calculator from (possibly overridden)
// assumptions. Missing tables fall back to the 2024 defaults.
func NewGermanTaxCalculator(a domain.Assumptions) *GermanTaxCalculator {
	defaults := domain.DefaultAssumptions()
	bracketsCfg := a.TaxBrackets
	if len(bracketsCfg) == 0 {
		bracketsCfg = defaults.TaxBrackets
	}
	contribCfg := a.Contributions
	if len(contribCfg) == 0 {
		contribCfg = defaults.Contributions
	}

	brackets := make([]TaxBracket, 0, len(bracketsCfg))
	for _, b := range bracketsCfg {
		brackets = append(brackets, TaxBracket{Min: b.Min, Max: b.Max, Rate: b.Rate})
	}
	contributions := make([]ContributionCategory, 0, len(contribCfg))
	for _, c := range contribCfg {
		contributions = append(contributions, ContributionCategory{Name: c.Name, CombinedRate: c.CombinedRate, MonthlyCeiling: c.MonthlyCeiling})
	}

	return &GermanTaxCalculator{Year: 2024, Brackets: brackets, Contributions: contributions}
}

// AnnualIncomeTax applies the progressive bracket table: each bracket's
// marginal rate taxes only the income falling within that bracket.
// Non-positive income yields zero.
func (tc *GermanTaxCalculator) AnnualIncomeTax(annualGross decimal.Decimal) decimal.Decimal {
	if annualGross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var total decimal.Decimal
	for _, bracket := range tc.Brackets {
		if annualGross.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := annualGross
		if !bracket.Max.IsZero() && upper.GreaterThan(bracket.Max) {
			upper = bracket.Max
		}
		inBracket := upper.Sub(bracket.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			total = total.Add(inBracket.Mul(bracket.Rate))
		}
	}
	return total
}

// MarginalRate returns the rate of the bracket the last euro of income
// falls into. Zero for non-positive income.
func (tc *GermanTaxCalculator) MarginalRate(annualGross decimal.Decimal) decimal.Decimal {
	if annualGross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := decimal.Zero
	for _, bracket := range tc.Brackets {
		if annualGross.GreaterThan(bracket.Min) {
			rate = bracket.Rate
		}
	}
	return rate
}

// MonthlySocialSecurity sums the employee-side contributions across all
// branches: min(income, ceiling) x half the combined rate per branch.
// Non-positive income yields zero.
func (tc *GermanTaxCalculator) MonthlySocialSecurity(monthlyGross decimal.Decimal) decimal.Decimal {
	if monthlyGross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	two := decimal.NewFromInt(2)
	var total decimal.Decimal
	for _, c := range tc.Contributions {
		base := monthlyGross
		if base.GreaterThan(c.MonthlyCeiling) {
			base = c.MonthlyCeiling
		}
		total = total.Add(base.Mul(c.CombinedRate).Div(two))
	}
	return total
}

// NetMonthlyIncome is gross minus one twelfth of the annual income tax
// minus the monthly social security contributions. Never negative.
func (tc *GermanTaxCalculator) NetMonthlyIncome(monthlyGross decimal.Decimal) decimal.Decimal {
	if monthlyGross.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	annualTax := tc.AnnualIncomeTax(monthlyGross.Mul(decimal.NewFromInt(12)))
	net := monthlyGross.
		Sub(annualTax.Div(decimal.NewFromInt(12))).
		Sub(tc.MonthlySocialSecurity(monthlyGross))
	if net.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return net
}
