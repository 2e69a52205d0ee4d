package calculation

import (
	"sort"

	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/shopspring/decimal"
)

// realEstateThreshold is the projected savings level above which spreading
// into property starts to make sense.
var realEstateThreshold = decimal.NewFromInt(200000)

// lowSavingsRateThreshold triggers the contribution recommendation when a
// shortfall exists and less than 15% of income is being saved.
var lowSavingsRateThreshold = decimal.NewFromFloat(0.15)

// fundedRatioDelayThreshold: below this funded ratio the action plan
// suggests delaying retirement.
var fundedRatioDelayThreshold = decimal.NewFromInt(70)

// impactRank orders recommendations High before Medium before Low.
func impactRank(i domain.Impact) int {
	switch i {
	case domain.ImpactHigh:
		return 0
	case domain.ImpactMedium:
		return 1
	default:
		return 2
	}
}

// GenerateRecommendations applies the fixed rule set in priority order.
// Each rule emits at most one recommendation; the generic diversification
// recommendation is always appended last regardless of its impact level.
func GenerateRecommendations(p *domain.FinancialProfile, proj domain.ProjectionResult) []domain.Recommendation {
	hasGap := proj.SavingsGap.GreaterThan(decimal.Zero)
	years := p.YearsToRetirement()

	var recs []domain.Recommendation

	if hasGap && p.MonthlySavings.LessThan(p.GrossMonthlyIncome.Mul(lowSavingsRateThreshold)) {
		recs = append(recs, domain.Recommendation{
			Title:       "Increase your monthly contributions",
			Description: "Your projected savings fall short of your retirement target and you are saving less than 15% of your income. Raising your monthly contribution is the most direct way to close the gap.",
			Impact:      domain.ImpactHigh,
		})
	}

	if hasGap && p.RiskTolerance == domain.RiskLow && years > 10 {
		recs = append(recs, domain.Recommendation{
			Title:       "Consider a higher-growth strategy",
			Description: "With more than ten years to retirement, a conservative allocation leaves significant growth on the table. A moderately higher equity share could close part of your savings gap.",
			Impact:      domain.ImpactHigh,
		})
	}

	if hasGap && !p.HasPrivatePension {
		recs = append(recs, domain.Recommendation{
			Title:       "Explore private pension options",
			Description: "A private pension (Riester, Ruerup or a company scheme) adds a tax-advantaged pillar alongside the state pension and helps cover your projected shortfall.",
			Impact:      domain.ImpactMedium,
		})
	}

	if p.YearsInGermany < 5 && !p.GermanCitizenship {
		recs = append(recs, domain.Recommendation{
			Title:       "Investigate your residency and benefit entitlements",
			Description: "With fewer than five years in Germany, check your state pension vesting, totalization agreements with your home country, and which benefits you keep if you leave.",
			Impact:      domain.ImpactMedium,
		})
	}

	if !p.HasPropertyInvestments && proj.ProjectedSavings.GreaterThan(realEstateThreshold) {
		recs = append(recs, domain.Recommendation{
			Title:       "Consider real estate investments",
			Description: "Your projected savings are substantial enough that property could diversify your retirement assets and provide rental income.",
			Impact:      domain.ImpactMedium,
		})
	}

	// Baseline guidance, emitted even when every rule above was skipped.
	diversify := domain.Recommendation{
		Title:       "Diversify across asset classes",
		Description: "Spread your retirement savings across equities, bonds and cash so no single market downturn derails your plan.",
		Impact:      domain.ImpactLow,
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return impactRank(recs[i].Impact) < impactRank(recs[j].Impact)
	})
	recs = append(recs, diversify)

	for i := range recs {
		recs[i].Priority = i + 1
	}
	return recs
}

// BuildActionPlan derives concrete next steps: the monthly savings increase
// needed to close the gap, a retirement delay suggestion when the plan is
// badly underfunded, allocation notes, and the tax advantage estimate.
func BuildActionPlan(p *domain.FinancialProfile, proj domain.ProjectionResult, taxes *GermanTaxCalculator, a domain.Assumptions) domain.ActionPlan {
	plan := domain.ActionPlan{}

	years := p.YearsToRetirement()
	if proj.SavingsGap.GreaterThan(decimal.Zero) && years > 0 {
		months := decimal.NewFromInt(int64(years) * 12)
		plan.SuggestedMonthlySavingsIncrease = proj.SavingsGap.Div(months).Round(2)
	}

	if proj.FundedRatio.LessThan(fundedRatioDelayThreshold) {
		plan.SuggestedRetirementDelayYears = 2
	}

	if p.RiskTolerance == domain.RiskLow && years > 10 {
		plan.AllocationNotes = append(plan.AllocationNotes, "Long horizon with a conservative allocation: consider shifting part of your portfolio towards equities.")
	}
	if p.RiskTolerance == domain.RiskHigh && years < 5 {
		plan.AllocationNotes = append(plan.AllocationNotes, "Retirement is close: consider de-risking into bonds and cash to protect what you have built.")
	}

	if adv := estimateTaxAdvantage(p, taxes, a.PensionDeductionCap); adv != nil {
		plan.TaxAdvantage = adv
	}

	return plan
}

// estimateTaxAdvantage estimates the annual tax saved if the current
// monthly savings were contributed through a deductible pension vehicle,
// capped at the configured deduction allowance. Nil when there is nothing
// to deduct or no tax to save.
func estimateTaxAdvantage(p *domain.FinancialProfile, taxes *GermanTaxCalculator, deductionCap decimal.Decimal) *domain.TaxAdvantage {
	annualContribution := p.MonthlySavings.Mul(decimal.NewFromInt(12))
	if annualContribution.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	if annualContribution.GreaterThan(deductionCap) {
		annualContribution = deductionCap
	}

	marginal := taxes.MarginalRate(p.AnnualIncome())
	if marginal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	return &domain.TaxAdvantage{
		DeductibleAnnualContribution: annualContribution,
		MarginalRate:                 marginal,
		EstimatedAnnualSaving:        annualContribution.Mul(marginal).Round(2),
	}
}
