package calculation

import (
	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/shopspring/decimal"
)

// SCORING MODEL:
//
// Five component scores, each clamped to [0,100], combined by the fixed
// weight table below. The weights are deliberately a single named constant:
// there is exactly one scoring model, and changing the blend means editing
// this table, not picking a code path.

// ComponentWeights is the authoritative weighting of the overall score.
// The weights sum to 1.
type ComponentWeights struct {
	SavingsRate        decimal.Decimal
	InvestmentStrategy decimal.Decimal
	RiskManagement     decimal.Decimal
	TimeHorizon        decimal.Decimal
	IncomeSecurity     decimal.Decimal
}

// DefaultComponentWeights weighs all five components equally.
func DefaultComponentWeights() ComponentWeights {
	fifth := decimal.NewFromFloat(0.20)
	return ComponentWeights{
		SavingsRate:        fifth,
		InvestmentStrategy: fifth,
		RiskManagement:     fifth,
		TimeHorizon:        fifth,
		IncomeSecurity:     fifth,
	}
}

// targetSavingsRate is the monthly-savings-to-income ratio that maps to a
// full savings rate score.
var targetSavingsRate = decimal.NewFromFloat(0.20)

// clampScore rounds to the nearest integer and clamps to [0,100].
func clampScore(d decimal.Decimal) int {
	n := int(d.Round(0).IntPart())
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// SavingsRateScore scales the savings ratio linearly so that saving 20% of
// gross monthly income scores 100.
func SavingsRateScore(monthlySavings, grossMonthlyIncome decimal.Decimal) int {
	if grossMonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	ratio := monthlySavings.Div(grossMonthlyIncome)
	return clampScore(ratio.Div(targetSavingsRate).Mul(decimal.NewFromInt(100)))
}

// InvestmentStrategyScore scores how well the risk bucket matches the time
// horizon. Categorical on purpose: the underlying advisory heuristic is a
// bucket table, not a curve.
func InvestmentStrategyScore(risk domain.RiskTolerance, yearsToRetirement int) int {
	switch risk {
	case domain.RiskHigh:
		switch {
		case yearsToRetirement >= 20:
			return 100
		case yearsToRetirement >= 10:
			return 90
		case yearsToRetirement >= 5:
			return 70
		default:
			return 50
		}
	case domain.RiskMedium:
		switch {
		case yearsToRetirement >= 15:
			return 85
		case yearsToRetirement >= 10:
			return 80
		case yearsToRetirement >= 5:
			return 75
		default:
			return 65
		}
	default: // low risk: appropriate close to retirement, too timid far out
		switch {
		case yearsToRetirement >= 15:
			return 55
		case yearsToRetirement >= 10:
			return 65
		case yearsToRetirement >= 5:
			return 75
		default:
			return 85
		}
	}
}

// RiskManagementScore is an additive point system over diversification and
// residency anchors, clamped to 100.
func RiskManagementScore(p *domain.FinancialProfile) int {
	points := 0
	if p.HasAdditionalIncome {
		points += 20
	}
	if p.HasPropertyInvestments {
		points += 25
	}
	if p.HasPrivatePension {
		points += 25
	}
	if p.YearsInGermany >= 5 {
		points += 15
	}
	if p.GermanCitizenship {
		points += 15
	}
	if points > 100 {
		points = 100
	}
	return points
}

// TimeHorizonScore is a stepped lookup by years to retirement.
func TimeHorizonScore(yearsToRetirement int) int {
	switch {
	case yearsToRetirement >= 30:
		return 100
	case yearsToRetirement >= 25:
		return 90
	case yearsToRetirement >= 20:
		return 80
	case yearsToRetirement >= 15:
		return 70
	case yearsToRetirement >= 10:
		return 60
	case yearsToRetirement >= 5:
		return 40
	default:
		return 20
	}
}

// IncomeSecurityScore starts from an employment type base and adds 10
// points per extra income pillar, clamped to 100.
func IncomeSecurityScore(p *domain.FinancialProfile) int {
	var base int
	switch p.EmploymentType {
	case domain.EmploymentCivilServant:
		base = 90
	case domain.EmploymentEmployed:
		base = 75
	case domain.EmploymentSelfEmployed:
		base = 60
	case domain.EmploymentFreelancer:
		base = 50
	default:
		base = 60
	}
	if p.HasAdditionalIncome {
		base += 10
	}
	if p.HasPropertyInvestments {
		base += 10
	}
	if p.HasPrivatePension {
		base += 10
	}
	if base > 100 {
		base = 100
	}
	return base
}

// ComputeComponentScores evaluates all five sub-scores for a profile.
func ComputeComponentScores(p *domain.FinancialProfile) domain.ComponentScores {
	years := p.YearsToRetirement()
	return domain.ComponentScores{
		SavingsRate:        SavingsRateScore(p.MonthlySavings, p.GrossMonthlyIncome),
		InvestmentStrategy: InvestmentStrategyScore(p.RiskTolerance, years),
		RiskManagement:     RiskManagementScore(p),
		TimeHorizon:        TimeHorizonScore(years),
		IncomeSecurity:     IncomeSecurityScore(p),
	}
}

// OverallScore combines the component scores with the given weights and
// rounds to an integer in [0,100].
func OverallScore(scores domain.ComponentScores, weights ComponentWeights) int {
	sum := decimal.NewFromInt(int64(scores.SavingsRate)).Mul(weights.SavingsRate).
		Add(decimal.NewFromInt(int64(scores.InvestmentStrategy)).Mul(weights.InvestmentStrategy)).
		Add(decimal.NewFromInt(int64(scores.RiskManagement)).Mul(weights.RiskManagement)).
		Add(decimal.NewFromInt(int64(scores.TimeHorizon)).Mul(weights.TimeHorizon)).
		Add(decimal.NewFromInt(int64(scores.IncomeSecurity)).Mul(weights.IncomeSecurity))
	return clampScore(sum)
}

// CategoryForScore maps an overall score to its label. One fixed table:
// >=90 Excellent, >=75 Good, >=60 Fair, >=40 Needs Attention, else
// Critical.
func CategoryForScore(score int) domain.Category {
	switch {
	case score >= 90:
		return domain.CategoryExcellent
	case score >= 75:
		return domain.CategoryGood
	case score >= 60:
		return domain.CategoryFair
	case score >= 40:
		return domain.CategoryNeedsAttention
	default:
		return domain.CategoryCritical
	}
}
