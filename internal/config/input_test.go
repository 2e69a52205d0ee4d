package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expatfin/rentenscore/internal/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfileFromFile(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", `
age: 35
retirementAge: 67
currentSalary: 60000
currentSavings: 50000
monthlySavings: 500
riskTolerance: medium
hasPrivatePension: true
yearsInGermany: 3
`)

	p, err := LoadProfileFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 35, p.Age)
	assert.True(t, p.GrossMonthlyIncome.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, domain.RiskMedium, p.RiskTolerance)
	assert.True(t, p.HasPrivatePension)
	assert.Equal(t, 3, p.YearsInGermany)
}

func TestLoadProfileFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfileFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTempFile(t, "bad.yaml", "age: [35")
		_, err := LoadProfileFromFile(path)
		assert.ErrorContains(t, err, "failed to parse YAML")
	})

	t.Run("invalid profile surfaces the validation error", func(t *testing.T) {
		path := writeTempFile(t, "young.yaml", `
age: 16
retirementAge: 67
currentSalary: 60000
currentSavings: 0
monthlySavings: 100
riskTolerance: low
`)
		_, err := LoadProfileFromFile(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "age")

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestLoadAssumptionsFromFile(t *testing.T) {
	t.Run("overrides merge over defaults", func(t *testing.T) {
		path := writeTempFile(t, "assumptions.yaml", `
inflation_rate: 0.03
return_medium_risk: 0.07
`)
		a, err := LoadAssumptionsFromFile(path)
		require.NoError(t, err)

		assert.True(t, a.InflationRate.Equal(decimal.NewFromFloat(0.03)))
		assert.True(t, a.ReturnMediumRisk.Equal(decimal.NewFromFloat(0.07)))

		// Untouched values keep their defaults.
		defaults := domain.DefaultAssumptions()
		assert.True(t, a.ReturnLowRisk.Equal(defaults.ReturnLowRisk))
		assert.Len(t, a.TaxBrackets, len(defaults.TaxBrackets))
		assert.True(t, a.PensionDeductionCap.Equal(defaults.PensionDeductionCap))
	})

	t.Run("invalid bracket ordering is rejected", func(t *testing.T) {
		path := writeTempFile(t, "brackets.yaml", `
tax_brackets:
  - {min: 0, max: 10000, rate: 0}
  - {min: 5000, max: 20000, rate: 0.2}
`)
		_, err := LoadAssumptionsFromFile(path)
		assert.ErrorContains(t, err, "strictly increasing")
	})

	t.Run("rate above one is rejected", func(t *testing.T) {
		path := writeTempFile(t, "rates.yaml", `
tax_brackets:
  - {min: 0, max: 10000, rate: 1.5}
`)
		_, err := LoadAssumptionsFromFile(path)
		assert.ErrorContains(t, err, "between 0 and 1")
	})

	t.Run("missing file returns the defaults alongside the error", func(t *testing.T) {
		a, err := LoadAssumptionsFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
		assert.True(t, a.InflationRate.Equal(domain.DefaultAssumptions().InflationRate))
	})
}
