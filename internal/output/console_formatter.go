package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/expatfin/rentenscore/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(28)
	valueStyle = lipgloss.NewStyle().Bold(true)

	scoreGood     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	scoreWarn     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	scoreCritical = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	badgeHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)
	badgeMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Padding(0, 1)
	badgeLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 1)
)

// ConsoleFormatter renders a human-readable score card for the CLI.
type ConsoleFormatter struct{}

func (f *ConsoleFormatter) Name() string { return "console" }

func (f *ConsoleFormatter) Format(result *domain.RetirementResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Retirement Readiness Report"))
	b.WriteString("\n")

	style := scoreStyle(result.Score)
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		style.Render(fmt.Sprintf("Score: %d/100", result.Score)),
		style.Render(fmt.Sprintf("(%s)", result.Category))))

	b.WriteString(titleStyle.Render("Component Scores"))
	b.WriteString("\n")
	writeComponent(&b, "Savings rate", result.Components.SavingsRate)
	writeComponent(&b, "Investment strategy", result.Components.InvestmentStrategy)
	writeComponent(&b, "Risk management", result.Components.RiskManagement)
	writeComponent(&b, "Time horizon", result.Components.TimeHorizon)
	writeComponent(&b, "Income security", result.Components.IncomeSecurity)
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Projection"))
	b.WriteString("\n")
	writeAmount(&b, "Projected savings", result.Projection.ProjectedSavings)
	writeAmount(&b, "  pessimistic", result.Projection.Bands.Pessimistic)
	writeAmount(&b, "  optimistic", result.Projection.Bands.Optimistic)
	writeAmount(&b, "Required savings", result.Projection.RequiredSavings)
	writeAmount(&b, "Savings gap", result.Projection.SavingsGap)
	writeRow(&b, "Funded ratio", result.Projection.FundedRatio.StringFixed(1)+"%")
	writeAmount(&b, "Sustainable income", result.Projection.SustainableMonthlyIncome)
	writeAmount(&b, "Net monthly income", result.NetMonthlyIncome)
	writeAmount(&b, "Est. state pension", result.EstimatedStatePension)
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Recommendations"))
	b.WriteString("\n")
	for _, rec := range result.Recommendations {
		b.WriteString(fmt.Sprintf("%s %s\n", impactBadge(rec.Impact), valueStyle.Render(rec.Title)))
		b.WriteString("    " + rec.Description + "\n")
	}

	if !result.ActionPlan.SuggestedMonthlySavingsIncrease.IsZero() || result.ActionPlan.SuggestedRetirementDelayYears > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Action Plan"))
		b.WriteString("\n")
		if !result.ActionPlan.SuggestedMonthlySavingsIncrease.IsZero() {
			writeAmount(&b, "Raise monthly savings by", result.ActionPlan.SuggestedMonthlySavingsIncrease)
		}
		if result.ActionPlan.SuggestedRetirementDelayYears > 0 {
			writeRow(&b, "Consider retiring later by", fmt.Sprintf("%d years", result.ActionPlan.SuggestedRetirementDelayYears))
		}
		for _, note := range result.ActionPlan.AllocationNotes {
			b.WriteString("  - " + note + "\n")
		}
		if adv := result.ActionPlan.TaxAdvantage; adv != nil {
			writeAmount(&b, "Potential annual tax saving", adv.EstimatedAnnualSaving)
		}
	}

	return []byte(b.String()), nil
}

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 75:
		return scoreGood
	case score >= 40:
		return scoreWarn
	default:
		return scoreCritical
	}
}

func impactBadge(impact domain.Impact) string {
	switch impact {
	case domain.ImpactHigh:
		return badgeHigh.Render("HIGH")
	case domain.ImpactMedium:
		return badgeMedium.Render("MED")
	default:
		return badgeLow.Render("LOW")
	}
}

func writeComponent(b *strings.Builder, label string, score int) {
	writeRow(b, label, fmt.Sprintf("%3d/100", score))
}

func writeAmount(b *strings.Builder, label string, amount decimal.Decimal) {
	writeRow(b, label, FormatCurrency(amount))
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label) + " " + valueStyle.Render(value) + "\n")
}

// FormatCurrency renders an amount as euros with thousands separators.
func FormatCurrency(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	neg := f < 0
	if neg {
		f = -f
	}
	s := fmt.Sprintf("%.2f", f)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteRune(',')
		}
		grouped.WriteRune(digit)
	}

	out := "EUR " + grouped.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}
