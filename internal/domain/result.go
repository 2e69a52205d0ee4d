package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioBands hold the projected savings recomputed under pessimistic and
// optimistic return assumptions (expected rate -/+ 2 percentage points).
// Deterministic by construction: the same profile always yields the same
// bands.
type ScenarioBands struct {
	Pessimistic decimal.Decimal `json:"pessimistic"`
	Expected    decimal.Decimal `json:"expected"`
	Optimistic  decimal.Decimal `json:"optimistic"`
}

// ProjectionResult carries the savings projection for one profile.
type ProjectionResult struct {
	ProjectedSavings decimal.Decimal `json:"projectedSavings"`
	RequiredSavings  decimal.Decimal `json:"requiredSavings"`
	// SavingsGap is signed: positive means a shortfall, negative a surplus.
	SavingsGap          decimal.Decimal `json:"savingsGap"`
	AssumedAnnualReturn decimal.Decimal `json:"assumedAnnualReturn"`
	// FundedRatio is ProjectedSavings / RequiredSavings as a percentage,
	// clamped to [0, 100].
	FundedRatio decimal.Decimal `json:"fundedRatio"`
	// SustainableMonthlyIncome is what the projected pot supports at the
	// safe withdrawal rate, a cross-check on the desired income.
	SustainableMonthlyIncome decimal.Decimal `json:"sustainableMonthlyIncome"`
	Bands                    ScenarioBands   `json:"bands"`
}

// ComponentScores are the five sub-scores feeding the overall readiness
// score. Each is clamped to [0, 100].
type ComponentScores struct {
	SavingsRate        int `json:"savingsRate"`
	InvestmentStrategy int `json:"investmentStrategy"`
	RiskManagement     int `json:"riskManagement"`
	TimeHorizon        int `json:"timeHorizon"`
	IncomeSecurity     int `json:"incomeSecurity"`
}

// Impact ranks a recommendation for sort order and UI badge color only.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Recommendation is one rule-generated piece of guidance.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
	Priority    int    `json:"priority"`
}

// TaxAdvantage estimates the annual income tax saved if current private
// contributions were routed through a deductible pension vehicle.
type TaxAdvantage struct {
	DeductibleAnnualContribution decimal.Decimal `json:"deductibleAnnualContribution"`
	MarginalRate                 decimal.Decimal `json:"marginalRate"`
	EstimatedAnnualSaving        decimal.Decimal `json:"estimatedAnnualSaving"`
}

// ActionPlan holds concrete next steps derived from the projection.
type ActionPlan struct {
	SuggestedMonthlySavingsIncrease decimal.Decimal `json:"suggestedMonthlySavingsIncrease"`
	SuggestedRetirementDelayYears   int             `json:"suggestedRetirementDelayYears"`
	AllocationNotes                 []string        `json:"allocationNotes,omitempty"`
	TaxAdvantage                    *TaxAdvantage   `json:"taxAdvantage,omitempty"`
}

// Category labels a score range.
type Category string

const (
	CategoryExcellent      Category = "Excellent"
	CategoryGood           Category = "Good"
	CategoryFair           Category = "Fair"
	CategoryNeedsAttention Category = "Needs Attention"
	CategoryCritical       Category = "Critical"
)

// RetirementResult is the complete output of one calculation and the
// payload external consumers (web UI, share links, PDF export) receive.
type RetirementResult struct {
	Score      int              `json:"score"`
	Category   Category         `json:"category"`
	Components ComponentScores  `json:"components"`
	Projection ProjectionResult `json:"projection"`

	NetMonthlyIncome      decimal.Decimal `json:"netMonthlyIncome"`
	EstimatedStatePension decimal.Decimal `json:"estimatedStatePension"`

	Recommendations []Recommendation `json:"recommendations"`
	ActionPlan      ActionPlan       `json:"actionPlan"`
}
