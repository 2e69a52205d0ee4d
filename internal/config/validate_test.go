package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expatfin/rentenscore/internal/domain"
)

func validRaw() map[string]any {
	return map[string]any{
		"age":            float64(35),
		"retirementAge":  float64(67),
		"currentSalary":  float64(60000),
		"currentSavings": float64(50000),
		"monthlySavings": float64(500),
		"riskTolerance":  "medium",
	}
}

func TestValidateRawHappyPath(t *testing.T) {
	p, err := ValidateRaw(validRaw())
	require.NoError(t, err)

	assert.Equal(t, 35, p.Age)
	assert.Equal(t, 67, p.RetirementAge)
	assert.True(t, p.GrossMonthlyIncome.Equal(decimal.NewFromInt(5000)),
		"annual salary must be divided by 12, got %s", p.GrossMonthlyIncome)
	assert.Equal(t, domain.RiskMedium, p.RiskTolerance)
	assert.Equal(t, domain.EmploymentEmployed, p.EmploymentType, "employment type defaults to employed")
	// 70% of gross monthly when neither a goal nor an explicit amount is given.
	assert.True(t, p.DesiredMonthlyIncome.Equal(decimal.NewFromInt(3500)))
}

func TestValidateRawRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw map[string]any)
		field  string
		kind   ErrorKind
	}{
		{
			name:   "age below 18",
			mutate: func(raw map[string]any) { raw["age"] = float64(17) },
			field:  "age",
			kind:   ErrOutOfRange,
		},
		{
			name:   "age above 90",
			mutate: func(raw map[string]any) { raw["age"] = float64(95) },
			field:  "age",
			kind:   ErrOutOfRange,
		},
		{
			name:   "missing age",
			mutate: func(raw map[string]any) { delete(raw, "age") },
			field:  "age",
			kind:   ErrMissingField,
		},
		{
			name: "retirement before current age",
			mutate: func(raw map[string]any) {
				raw["age"] = float64(40)
				raw["retirementAge"] = float64(35)
			},
			field: "retirementAge",
			kind:  ErrInvalidOrdering,
		},
		{
			name: "retirement equal to current age",
			mutate: func(raw map[string]any) {
				raw["retirementAge"] = float64(35)
			},
			field: "retirementAge",
			kind:  ErrInvalidOrdering,
		},
		{
			name:   "missing income entirely",
			mutate: func(raw map[string]any) { delete(raw, "currentSalary") },
			field:  "currentSalary",
			kind:   ErrMissingField,
		},
		{
			name:   "zero income",
			mutate: func(raw map[string]any) { raw["currentSalary"] = float64(0) },
			field:  "currentSalary",
			kind:   ErrOutOfRange,
		},
		{
			name:   "negative current savings",
			mutate: func(raw map[string]any) { raw["currentSavings"] = float64(-1) },
			field:  "currentSavings",
			kind:   ErrOutOfRange,
		},
		{
			name:   "missing monthly savings",
			mutate: func(raw map[string]any) { delete(raw, "monthlySavings") },
			field:  "monthlySavings",
			kind:   ErrMissingField,
		},
		{
			name:   "missing risk tolerance",
			mutate: func(raw map[string]any) { delete(raw, "riskTolerance") },
			field:  "riskTolerance",
			kind:   ErrMissingField,
		},
		{
			name:   "unknown risk tolerance",
			mutate: func(raw map[string]any) { raw["riskTolerance"] = "yolo" },
			field:  "riskTolerance",
			kind:   ErrInvalidEnum,
		},
		{
			name:   "risk scale out of range",
			mutate: func(raw map[string]any) { raw["riskTolerance"] = float64(11) },
			field:  "riskTolerance",
			kind:   ErrInvalidEnum,
		},
		{
			name:   "unknown employment type",
			mutate: func(raw map[string]any) { raw["employmentType"] = "astronaut" },
			field:  "employmentType",
			kind:   ErrInvalidEnum,
		},
		{
			name:   "unknown retirement goal",
			mutate: func(raw map[string]any) { raw["retirementGoal"] = "extravagant" },
			field:  "retirementGoal",
			kind:   ErrInvalidEnum,
		},
		{
			name:   "non-numeric age",
			mutate: func(raw map[string]any) { raw["age"] = "thirtyfive" },
			field:  "age",
			kind:   ErrInvalidValue,
		},
		{
			name:   "negative years in Germany",
			mutate: func(raw map[string]any) { raw["yearsInGermany"] = float64(-3) },
			field:  "yearsInGermany",
			kind:   ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(raw)

			_, err := ValidateRaw(raw)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.kind, verr.Kind)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateRawRiskScale(t *testing.T) {
	tests := []struct {
		input    any
		expected domain.RiskTolerance
	}{
		{float64(1), domain.RiskLow},
		{float64(3), domain.RiskLow},
		{float64(4), domain.RiskMedium},
		{float64(7), domain.RiskMedium},
		{float64(8), domain.RiskHigh},
		{float64(10), domain.RiskHigh},
		{"8", domain.RiskHigh},
		{"HIGH", domain.RiskHigh},
		{" low ", domain.RiskLow},
	}

	for _, tt := range tests {
		raw := validRaw()
		raw["riskTolerance"] = tt.input
		p, err := ValidateRaw(raw)
		require.NoError(t, err, "input %v", tt.input)
		assert.Equal(t, tt.expected, p.RiskTolerance, "input %v", tt.input)
	}
}

func TestValidateRawIncomeSources(t *testing.T) {
	t.Run("explicit monthly income wins over annual salary", func(t *testing.T) {
		raw := validRaw()
		raw["grossMonthlyIncome"] = float64(4200)
		p, err := ValidateRaw(raw)
		require.NoError(t, err)
		assert.True(t, p.GrossMonthlyIncome.Equal(decimal.NewFromInt(4200)))
	})

	t.Run("monthlyContribution is accepted as an alias", func(t *testing.T) {
		raw := validRaw()
		delete(raw, "monthlySavings")
		raw["monthlyContribution"] = float64(650)
		p, err := ValidateRaw(raw)
		require.NoError(t, err)
		assert.True(t, p.MonthlySavings.Equal(decimal.NewFromInt(650)))
	})

	t.Run("numeric strings are coerced", func(t *testing.T) {
		raw := validRaw()
		raw["age"] = "35"
		raw["currentSalary"] = "60000"
		raw["monthlySavings"] = "500.50"
		p, err := ValidateRaw(raw)
		require.NoError(t, err)
		assert.Equal(t, 35, p.Age)
		assert.True(t, p.MonthlySavings.Equal(decimal.NewFromFloat(500.50)))
	})
}

func TestValidateRawDesiredIncome(t *testing.T) {
	t.Run("explicit desired income wins", func(t *testing.T) {
		raw := validRaw()
		raw["desiredRetirementIncome"] = float64(2800)
		raw["retirementGoal"] = "luxurious"
		p, err := ValidateRaw(raw)
		require.NoError(t, err)
		assert.True(t, p.DesiredMonthlyIncome.Equal(decimal.NewFromInt(2800)))
	})

	t.Run("retirement goal sets the replacement ratio", func(t *testing.T) {
		tests := []struct {
			goal     string
			expected int64
		}{
			{"modest", 3000},     // 0.60 * 5000
			{"comfortable", 3750}, // 0.75 * 5000
			{"luxurious", 4250},  // 0.85 * 5000
		}
		for _, tt := range tests {
			raw := validRaw()
			raw["retirementGoal"] = tt.goal
			p, err := ValidateRaw(raw)
			require.NoError(t, err, "goal %s", tt.goal)
			assert.True(t, p.DesiredMonthlyIncome.Equal(decimal.NewFromInt(tt.expected)),
				"goal %s: expected %d, got %s", tt.goal, tt.expected, p.DesiredMonthlyIncome)
		}
	})
}

func TestValidateRawOptionalFlags(t *testing.T) {
	raw := validRaw()
	raw["hasPrivatePension"] = true
	raw["hasPropertyInvestments"] = "yes"
	raw["germanCitizenship"] = "false"
	raw["yearsInGermany"] = float64(6)
	raw["propertyValue"] = float64(250000)
	raw["gender"] = "Female"

	p, err := ValidateRaw(raw)
	require.NoError(t, err)

	assert.True(t, p.HasPrivatePension)
	assert.True(t, p.HasPropertyInvestments)
	assert.False(t, p.GermanCitizenship)
	assert.Equal(t, 6, p.YearsInGermany)
	assert.True(t, p.PropertyValue.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, domain.GenderFemale, p.Gender)
}
