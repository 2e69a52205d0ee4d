package output

import (
	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/shopspring/decimal"
)

// ScoreView is the standardized presentation shape of a result: a flat
// score, a category label, named sub-scores, and the recommendation list.
// It is a pure transform over the engine's native output; nothing here is
// recalculated.
type ScoreView struct {
	Overall         int                  `json:"overall"`
	Category        string               `json:"category"`
	Breakdown       map[string]int       `json:"breakdown"`
	FundedRatio     decimal.Decimal      `json:"fundedRatio"`
	Recommendations []RecommendationView `json:"recommendations"`
}

// RecommendationView mirrors domain.Recommendation for the wire.
type RecommendationView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Priority    int    `json:"priority"`
}

// BuildScoreView maps a RetirementResult to its standardized view.
func BuildScoreView(result *domain.RetirementResult) ScoreView {
	recs := make([]RecommendationView, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		recs = append(recs, RecommendationView{
			Title:       r.Title,
			Description: r.Description,
			Impact:      string(r.Impact),
			Priority:    r.Priority,
		})
	}

	return ScoreView{
		Overall:  result.Score,
		Category: string(result.Category),
		Breakdown: map[string]int{
			"savingsRate":        result.Components.SavingsRate,
			"investmentStrategy": result.Components.InvestmentStrategy,
			"riskManagement":     result.Components.RiskManagement,
			"timeHorizon":        result.Components.TimeHorizon,
			"incomeSecurity":     result.Components.IncomeSecurity,
		},
		FundedRatio:     result.Projection.FundedRatio,
		Recommendations: recs,
	}
}
