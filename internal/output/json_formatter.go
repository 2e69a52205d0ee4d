package output

import (
	json "github.com/goccy/go-json"

	"github.com/expatfin/rentenscore/internal/domain"
)

// JSONFormatter emits the full result plus the standardized score view,
// matching the shape the HTTP API returns.
type JSONFormatter struct{}

func (f *JSONFormatter) Name() string { return "json" }

func (f *JSONFormatter) Format(result *domain.RetirementResult) ([]byte, error) {
	payload := struct {
		Results *domain.RetirementResult `json:"results"`
		Score   ScoreView                `json:"score"`
	}{
		Results: result,
		Score:   BuildScoreView(result),
	}
	return json.MarshalIndent(payload, "", "  ")
}
