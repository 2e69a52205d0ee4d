package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/expatfin/rentenscore/internal/domain"
)

func TestSavingsRateScore(t *testing.T) {
	tests := []struct {
		name     string
		savings  float64
		income   float64
		expected int
	}{
		{"20 percent maps to 100", 1000, 5000, 100},
		{"10 percent maps to 50", 500, 5000, 50},
		{"5 percent maps to 25", 250, 5000, 25},
		{"zero savings", 0, 5000, 0},
		{"over-saving clamps at 100", 2500, 5000, 100},
		{"zero income scores zero", 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsRateScore(decimal.NewFromFloat(tt.savings), decimal.NewFromFloat(tt.income))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInvestmentStrategyScore(t *testing.T) {
	tests := []struct {
		risk     domain.RiskTolerance
		years    int
		expected int
	}{
		{domain.RiskHigh, 25, 100},
		{domain.RiskHigh, 12, 90},
		{domain.RiskHigh, 3, 50},
		{domain.RiskMedium, 20, 85},
		{domain.RiskMedium, 12, 80},
		{domain.RiskMedium, 2, 65},
		{domain.RiskLow, 25, 55},
		{domain.RiskLow, 7, 75},
		{domain.RiskLow, 2, 85},
	}

	for _, tt := range tests {
		got := InvestmentStrategyScore(tt.risk, tt.years)
		assert.Equal(t, tt.expected, got, "risk=%s years=%d", tt.risk, tt.years)
	}
}

func TestRiskManagementScore(t *testing.T) {
	t.Run("nothing in place", func(t *testing.T) {
		p := &domain.FinancialProfile{}
		assert.Equal(t, 0, RiskManagementScore(p))
	})

	t.Run("everything in place clamps at 100", func(t *testing.T) {
		p := &domain.FinancialProfile{
			HasAdditionalIncome:    true,
			HasPropertyInvestments: true,
			HasPrivatePension:      true,
			YearsInGermany:         10,
			GermanCitizenship:      true,
		}
		assert.Equal(t, 100, RiskManagementScore(p))
	})

	t.Run("partial coverage", func(t *testing.T) {
		p := &domain.FinancialProfile{
			HasPrivatePension: true,
			YearsInGermany:    6,
		}
		assert.Equal(t, 40, RiskManagementScore(p))
	})
}

func TestTimeHorizonScore(t *testing.T) {
	tests := []struct {
		years    int
		expected int
	}{
		{35, 100}, {30, 100}, {27, 90}, {22, 80}, {17, 70}, {12, 60}, {7, 40}, {3, 20}, {1, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TimeHorizonScore(tt.years), "years=%d", tt.years)
	}
}

func TestIncomeSecurityScore(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.FinancialProfile
		expected int
	}{
		{"plain employee", domain.FinancialProfile{EmploymentType: domain.EmploymentEmployed}, 75},
		{"civil servant", domain.FinancialProfile{EmploymentType: domain.EmploymentCivilServant}, 90},
		{"self-employed", domain.FinancialProfile{EmploymentType: domain.EmploymentSelfEmployed}, 60},
		{"freelancer", domain.FinancialProfile{EmploymentType: domain.EmploymentFreelancer}, 50},
		{
			"civil servant with every pillar clamps at 100",
			domain.FinancialProfile{
				EmploymentType:         domain.EmploymentCivilServant,
				HasAdditionalIncome:    true,
				HasPropertyInvestments: true,
				HasPrivatePension:      true,
			},
			100,
		},
		{
			"freelancer with private pension",
			domain.FinancialProfile{EmploymentType: domain.EmploymentFreelancer, HasPrivatePension: true},
			60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IncomeSecurityScore(&tt.profile))
		})
	}
}

func TestOverallScoreEqualWeights(t *testing.T) {
	scores := domain.ComponentScores{
		SavingsRate:        50,
		InvestmentStrategy: 85,
		RiskManagement:     0,
		TimeHorizon:        100,
		IncomeSecurity:     75,
	}
	// (50+85+0+100+75)/5 = 62
	assert.Equal(t, 62, OverallScore(scores, DefaultComponentWeights()))
}

func TestCategoryForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected domain.Category
	}{
		{100, domain.CategoryExcellent},
		{90, domain.CategoryExcellent},
		{89, domain.CategoryGood},
		{75, domain.CategoryGood},
		{74, domain.CategoryFair},
		{60, domain.CategoryFair},
		{59, domain.CategoryNeedsAttention},
		{40, domain.CategoryNeedsAttention},
		{39, domain.CategoryCritical},
		{0, domain.CategoryCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CategoryForScore(tt.score), "score=%d", tt.score)
	}
}

func TestComponentScoresAlwaysClamped(t *testing.T) {
	boundaryProfiles := []domain.FinancialProfile{
		{Age: 18, RetirementAge: 19, GrossMonthlyIncome: decimal.NewFromInt(1), MonthlySavings: decimal.NewFromInt(100000), RiskTolerance: domain.RiskHigh, EmploymentType: domain.EmploymentCivilServant, HasAdditionalIncome: true, HasPropertyInvestments: true, HasPrivatePension: true, GermanCitizenship: true, YearsInGermany: 50},
		{Age: 18, RetirementAge: 90, GrossMonthlyIncome: decimal.NewFromInt(100000), RiskTolerance: domain.RiskLow, EmploymentType: domain.EmploymentFreelancer},
		{Age: 90, RetirementAge: 91, GrossMonthlyIncome: decimal.NewFromInt(3000), MonthlySavings: decimal.NewFromInt(3000), RiskTolerance: domain.RiskMedium},
	}

	for _, p := range boundaryProfiles {
		scores := ComputeComponentScores(&p)
		for name, v := range map[string]int{
			"savingsRate":        scores.SavingsRate,
			"investmentStrategy": scores.InvestmentStrategy,
			"riskManagement":     scores.RiskManagement,
			"timeHorizon":        scores.TimeHorizon,
			"incomeSecurity":     scores.IncomeSecurity,
		} {
			assert.GreaterOrEqual(t, v, 0, "%s below 0", name)
			assert.LessOrEqual(t, v, 100, "%s above 100", name)
		}
	}
}
