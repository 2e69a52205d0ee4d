package config

import (
	"fmt"
	"os"

	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadProfileFromFile reads a profile YAML file and runs it through the
// same raw-map validator the HTTP API uses, so the CLI and the API accept
// exactly the same inputs and reject them with the same errors.
func LoadProfileFromFile(filename string) (*domain.FinancialProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	profile, err := ValidateRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return profile, nil
}

// LoadAssumptionsFromFile reads an assumptions override file and merges it
// over the built-in 2024 defaults: any zero-valued rate or empty table
// keeps its default.
func LoadAssumptionsFromFile(filename string) (domain.Assumptions, error) {
	defaults := domain.DefaultAssumptions()

	data, err := os.ReadFile(filename)
	if err != nil {
		return defaults, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var override domain.Assumptions
	if err := yaml.Unmarshal(data, &override); err != nil {
		return defaults, fmt.Errorf("failed to parse YAML: %w", err)
	}

	merged := mergeAssumptions(defaults, override)
	if err := validateAssumptions(merged); err != nil {
		return defaults, fmt.Errorf("assumptions validation failed: %w", err)
	}
	return merged, nil
}

func mergeAssumptions(base, override domain.Assumptions) domain.Assumptions {
	out := base
	if !override.InflationRate.IsZero() {
		out.InflationRate = override.InflationRate
	}
	if !override.PostRetirementReturn.IsZero() {
		out.PostRetirementReturn = override.PostRetirementReturn
	}
	if !override.SafeWithdrawalRate.IsZero() {
		out.SafeWithdrawalRate = override.SafeWithdrawalRate
	}
	if !override.ReturnLowRisk.IsZero() {
		out.ReturnLowRisk = override.ReturnLowRisk
	}
	if !override.ReturnMediumRisk.IsZero() {
		out.ReturnMediumRisk = override.ReturnMediumRisk
	}
	if !override.ReturnHighRisk.IsZero() {
		out.ReturnHighRisk = override.ReturnHighRisk
	}
	if len(override.TaxBrackets) > 0 {
		out.TaxBrackets = override.TaxBrackets
	}
	if len(override.Contributions) > 0 {
		out.Contributions = override.Contributions
	}
	if !override.StatePensionReplacementRate.IsZero() {
		out.StatePensionReplacementRate = override.StatePensionReplacementRate
	}
	if !override.PensionDeductionCap.IsZero() {
		out.PensionDeductionCap = override.PensionDeductionCap
	}
	return out
}

func validateAssumptions(a domain.Assumptions) error {
	if a.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%%")
	}
	if a.ReturnLowRisk.LessThan(decimal.Zero) || a.ReturnMediumRisk.LessThan(decimal.Zero) || a.ReturnHighRisk.LessThan(decimal.Zero) {
		return fmt.Errorf("risk-implied returns cannot be negative")
	}

	prevMin := decimal.NewFromInt(-1)
	for i, b := range a.TaxBrackets {
		if b.Min.LessThanOrEqual(prevMin) {
			return fmt.Errorf("tax bracket %d: thresholds must be strictly increasing", i)
		}
		if !b.Max.IsZero() && b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("tax bracket %d: max must exceed min", i)
		}
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("tax bracket %d: rate must be between 0 and 1", i)
		}
		prevMin = b.Min
	}

	for i, c := range a.Contributions {
		if c.CombinedRate.LessThan(decimal.Zero) || c.CombinedRate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("contribution %d (%s): combined rate must be between 0 and 1", i, c.Name)
		}
		if c.MonthlyCeiling.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("contribution %d (%s): ceiling must be positive", i, c.Name)
		}
	}
	return nil
}
