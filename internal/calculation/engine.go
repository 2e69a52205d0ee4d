package calculation

import (
	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine orchestrates the full readiness calculation: tax and contribution
// estimates, savings projection, component scoring, and recommendation
// generation. It holds only immutable tables, performs no I/O, and is safe
// to share across concurrent requests.
type Engine struct {
	Taxes       *GermanTaxCalculator
	Assumptions domain.Assumptions
	Weights     ComponentWeights
}

// NewEngine creates an engine with the built-in 2024 assumptions.
func NewEngine() *Engine {
	return NewEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewEngineWithAssumptions creates an engine with overridden assumption
// tables, e.g. loaded from an assumptions file.
func NewEngineWithAssumptions(a domain.Assumptions) *Engine {
	return &Engine{
		Taxes:       NewGermanTaxCalculator(a),
		Assumptions: a,
		Weights:     DefaultComponentWeights(),
	}
}

// Calculate runs the complete pipeline for a validated profile. It is a
// pure function of the profile and the engine's constant tables: the same
// input always yields the same result.
func (e *Engine) Calculate(p *domain.FinancialProfile) *domain.RetirementResult {
	proj := e.Project(p)
	scores := ComputeComponentScores(p)
	overall := OverallScore(scores, e.Weights)

	statePension := p.GrossMonthlyIncome.
		Mul(e.Assumptions.StatePensionReplacementRate).
		Mul(domain.StatePensionMultiplier(p.EmploymentType)).
		Round(2)

	return &domain.RetirementResult{
		Score:                 overall,
		Category:              CategoryForScore(overall),
		Components:            scores,
		Projection:            proj,
		NetMonthlyIncome:      e.Taxes.NetMonthlyIncome(p.GrossMonthlyIncome).Round(2),
		EstimatedStatePension: statePension,
		Recommendations:       GenerateRecommendations(p, proj),
		ActionPlan:            BuildActionPlan(p, proj, e.Taxes, e.Assumptions),
	}
}

// Project computes the savings projection for a profile: future value of
// current savings plus contributions at the risk-implied return, the
// required pot for the desired retirement income, the signed gap, the
// funded ratio, and the scenario bands.
func (e *Engine) Project(p *domain.FinancialProfile) domain.ProjectionResult {
	years := p.YearsToRetirement()
	rate := e.Assumptions.ReturnForRisk(p.RiskTolerance)

	pessimistic, projected, optimistic := ProjectionBands(p.MonthlySavings, years, rate, p.CurrentSavings)

	required := RequiredSavings(
		p.DesiredMonthlyIncome,
		p.YearsInRetirement(),
		e.Assumptions.InflationRate,
		e.Assumptions.PostRetirementReturn,
	)

	hundred := decimal.NewFromInt(100)
	funded := hundred
	if required.GreaterThan(decimal.Zero) {
		funded = projected.Div(required).Mul(hundred)
		if funded.GreaterThan(hundred) {
			funded = hundred
		}
		if funded.LessThan(decimal.Zero) {
			funded = decimal.Zero
		}
	}

	projectedRounded := projected.Round(2)
	sustainable := projectedRounded.
		Mul(e.Assumptions.SafeWithdrawalRate).
		Div(decimalTwelve).
		Round(2)

	return domain.ProjectionResult{
		ProjectedSavings:         projectedRounded,
		RequiredSavings:          required.Round(2),
		SavingsGap:               required.Sub(projected).Round(2),
		AssumedAnnualReturn:      rate,
		FundedRatio:              funded.Round(1),
		SustainableMonthlyIncome: sustainable,
		Bands: domain.ScenarioBands{
			Pessimistic: pessimistic.Round(2),
			Expected:    projectedRounded,
			Optimistic:  optimistic.Round(2),
		},
	}
}
