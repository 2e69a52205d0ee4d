package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expatfin/rentenscore/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	ErrMissingField    ErrorKind = "missing_field"
	ErrOutOfRange      ErrorKind = "out_of_range"
	ErrInvalidEnum     ErrorKind = "invalid_enum"
	ErrInvalidOrdering ErrorKind = "invalid_ordering"
	ErrInvalidValue    ErrorKind = "invalid_value"
)

// ValidationError names the offending field and the reason the request was
// rejected. The whole request is rejected on the first failure; calculation
// never runs on a partially valid profile.
type ValidationError struct {
	Field  string
	Kind   ErrorKind
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func missingErr(field string) error {
	return &ValidationError{Field: field, Kind: ErrMissingField, Reason: "is required"}
}

// ValidateRaw checks a raw key-value map against the input contract,
// coerces every field to its proper type, resolves all defaults, and
// returns an immutable profile. The map may come from a JSON request body
// or a parsed YAML file; numeric fields accept numbers or numeric strings,
// boolean fields accept bools or "true"/"false".
func ValidateRaw(raw map[string]any) (*domain.FinancialProfile, error) {
	p := &domain.FinancialProfile{}

	age, err := requireInt(raw, "age")
	if err != nil {
		return nil, err
	}
	if age < 18 || age > 90 {
		return nil, &ValidationError{Field: "age", Kind: ErrOutOfRange, Reason: fmt.Sprintf("must be between 18 and 90, got %d", age)}
	}
	p.Age = age

	retirementAge, err := requireInt(raw, "retirementAge")
	if err != nil {
		return nil, err
	}
	if retirementAge <= age {
		return nil, &ValidationError{Field: "retirementAge", Kind: ErrInvalidOrdering, Reason: fmt.Sprintf("must be greater than age (%d), got %d", age, retirementAge)}
	}
	p.RetirementAge = retirementAge

	// Income: either a gross monthly figure or an annual salary; one must
	// be present and the other is derived.
	monthly, hasMonthly, err := optionalAmount(raw, "grossMonthlyIncome")
	if err != nil {
		return nil, err
	}
	annual, hasAnnual, err := optionalAmount(raw, "currentSalary")
	if err != nil {
		return nil, err
	}
	switch {
	case hasMonthly:
		p.GrossMonthlyIncome = monthly
	case hasAnnual:
		p.GrossMonthlyIncome = annual.Div(decimal.NewFromInt(12))
	default:
		return nil, missingErr("currentSalary")
	}
	if p.GrossMonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Field: "currentSalary", Kind: ErrOutOfRange, Reason: "income must be positive"}
	}

	p.CurrentSavings, err = requireAmount(raw, "currentSavings")
	if err != nil {
		return nil, err
	}

	savings, hasSavings, err := optionalAmount(raw, "monthlySavings")
	if err != nil {
		return nil, err
	}
	if !hasSavings {
		savings, hasSavings, err = optionalAmount(raw, "monthlyContribution")
		if err != nil {
			return nil, err
		}
	}
	if !hasSavings {
		return nil, missingErr("monthlySavings")
	}
	if savings.LessThan(decimal.Zero) {
		return nil, &ValidationError{Field: "monthlySavings", Kind: ErrOutOfRange, Reason: "cannot be negative"}
	}
	p.MonthlySavings = savings

	p.RiskTolerance, err = parseRiskTolerance(raw)
	if err != nil {
		return nil, err
	}

	p.EmploymentType, err = parseEmploymentType(raw)
	if err != nil {
		return nil, err
	}

	p.Gender, err = parseGender(raw)
	if err != nil {
		return nil, err
	}

	if p.HasAdditionalIncome, err = optionalBool(raw, "hasAdditionalIncome"); err != nil {
		return nil, err
	}
	if p.AdditionalIncomeAmount, err = optionalNonNegative(raw, "additionalIncomeAmount"); err != nil {
		return nil, err
	}
	if p.HasPropertyInvestments, err = optionalBool(raw, "hasPropertyInvestments"); err != nil {
		return nil, err
	}
	if p.PropertyValue, err = optionalNonNegative(raw, "propertyValue"); err != nil {
		return nil, err
	}
	if p.HasPrivatePension, err = optionalBool(raw, "hasPrivatePension"); err != nil {
		return nil, err
	}
	if p.PrivatePensionValue, err = optionalNonNegative(raw, "privatePensionValue"); err != nil {
		return nil, err
	}
	if p.IsExpat, err = optionalBool(raw, "isExpat"); err != nil {
		return nil, err
	}
	if p.HasForeignIncome, err = optionalBool(raw, "hasForeignIncome"); err != nil {
		return nil, err
	}
	if p.DebtLevel, err = optionalNonNegative(raw, "debtLevel"); err != nil {
		return nil, err
	}

	years, hasYears, err := optionalIntField(raw, "yearsInGermany")
	if err != nil {
		return nil, err
	}
	if hasYears {
		if years < 0 {
			return nil, &ValidationError{Field: "yearsInGermany", Kind: ErrOutOfRange, Reason: "cannot be negative"}
		}
		p.YearsInGermany = years
	}
	if p.GermanCitizenship, err = optionalBool(raw, "germanCitizenship"); err != nil {
		return nil, err
	}

	if err := resolveDesiredIncome(raw, p); err != nil {
		return nil, err
	}

	return p, nil
}

// resolveDesiredIncome fixes the desired retirement income once, here, so
// nothing downstream ever re-defaults it: an explicit amount wins, then the
// retirement goal's replacement ratio, then 70% of gross monthly income.
func resolveDesiredIncome(raw map[string]any, p *domain.FinancialProfile) error {
	desired, hasDesired, err := optionalAmount(raw, "desiredRetirementIncome")
	if err != nil {
		return err
	}
	if hasDesired {
		if desired.LessThan(decimal.Zero) {
			return &ValidationError{Field: "desiredRetirementIncome", Kind: ErrOutOfRange, Reason: "cannot be negative"}
		}
		p.DesiredMonthlyIncome = desired
		return nil
	}

	if v, ok := raw["retirementGoal"]; ok && v != nil && fmt.Sprint(v) != "" {
		goal := domain.RetirementGoal(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
		switch goal {
		case domain.GoalModest, domain.GoalComfortable, domain.GoalLuxurious:
			p.RetirementGoal = goal
			p.DesiredMonthlyIncome = p.GrossMonthlyIncome.Mul(domain.ReplacementRatio(goal))
			return nil
		default:
			return &ValidationError{Field: "retirementGoal", Kind: ErrInvalidEnum, Reason: "must be one of modest, comfortable, luxurious"}
		}
	}

	p.DesiredMonthlyIncome = p.GrossMonthlyIncome.Mul(decimal.NewFromFloat(0.70))
	return nil
}

// parseRiskTolerance accepts the low/medium/high enum or a 1-10 numeric
// scale (1-3 low, 4-7 medium, 8-10 high).
func parseRiskTolerance(raw map[string]any) (domain.RiskTolerance, error) {
	v, ok := raw["riskTolerance"]
	if !ok || v == nil || fmt.Sprint(v) == "" {
		return "", missingErr("riskTolerance")
	}

	n, isNumber := toFloat(v)
	if !isNumber {
		if s, ok := v.(string); ok {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				n, isNumber = parsed, true
			}
		}
	}
	if isNumber {
		scale := int(n)
		switch {
		case scale >= 1 && scale <= 3:
			return domain.RiskLow, nil
		case scale >= 4 && scale <= 7:
			return domain.RiskMedium, nil
		case scale >= 8 && scale <= 10:
			return domain.RiskHigh, nil
		default:
			return "", &ValidationError{Field: "riskTolerance", Kind: ErrInvalidEnum, Reason: fmt.Sprintf("numeric scale must be 1-10, got %d", scale)}
		}
	}

	switch domain.RiskTolerance(strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))) {
	case domain.RiskLow:
		return domain.RiskLow, nil
	case domain.RiskMedium:
		return domain.RiskMedium, nil
	case domain.RiskHigh:
		return domain.RiskHigh, nil
	default:
		return "", &ValidationError{Field: "riskTolerance", Kind: ErrInvalidEnum, Reason: "must be one of low, medium, high or a 1-10 scale"}
	}
}

func parseEmploymentType(raw map[string]any) (domain.EmploymentType, error) {
	v, ok := raw["employmentType"]
	if !ok || v == nil || fmt.Sprint(v) == "" {
		return domain.EmploymentEmployed, nil
	}
	et := domain.EmploymentType(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
	for _, valid := range domain.ValidEmploymentTypes() {
		if et == valid {
			return et, nil
		}
	}
	return "", &ValidationError{Field: "employmentType", Kind: ErrInvalidEnum, Reason: "must be one of employed, self-employed, civil-servant, freelancer"}
}

func parseGender(raw map[string]any) (domain.Gender, error) {
	v, ok := raw["gender"]
	if !ok || v == nil || fmt.Sprint(v) == "" {
		return "", nil
	}
	g := domain.Gender(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
	switch g {
	case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
		return g, nil
	default:
		return "", &ValidationError{Field: "gender", Kind: ErrInvalidEnum, Reason: "must be one of male, female, other"}
	}
}

// toFloat coerces the numeric representations the JSON and YAML decoders
// produce. Strings are handled separately so that enum fields never pass
// through here.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func numericValue(v any) (decimal.Decimal, bool) {
	if f, ok := toFloat(v); ok {
		return decimal.NewFromFloat(f), true
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Decimal{}, false
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

func requireInt(raw map[string]any, field string) (int, error) {
	n, present, err := optionalIntField(raw, field)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, missingErr(field)
	}
	return n, nil
}

func optionalIntField(raw map[string]any, field string) (int, bool, error) {
	v, ok := raw[field]
	if !ok || v == nil || fmt.Sprint(v) == "" {
		return 0, false, nil
	}
	if f, ok := toFloat(v); ok {
		return int(f), true, nil
	}
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true, nil
		}
	}
	return 0, false, &ValidationError{Field: field, Kind: ErrInvalidValue, Reason: "must be a number"}
}

func requireAmount(raw map[string]any, field string) (decimal.Decimal, error) {
	d, present, err := optionalAmount(raw, field)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !present {
		return decimal.Decimal{}, missingErr(field)
	}
	if d.LessThan(decimal.Zero) {
		return decimal.Decimal{}, &ValidationError{Field: field, Kind: ErrOutOfRange, Reason: "cannot be negative"}
	}
	return d, nil
}

func optionalAmount(raw map[string]any, field string) (decimal.Decimal, bool, error) {
	v, ok := raw[field]
	if !ok || v == nil || fmt.Sprint(v) == "" {
		return decimal.Decimal{}, false, nil
	}
	d, ok := numericValue(v)
	if !ok {
		return decimal.Decimal{}, false, &ValidationError{Field: field, Kind: ErrInvalidValue, Reason: "must be a number"}
	}
	return d, true, nil
}

func optionalNonNegative(raw map[string]any, field string) (decimal.Decimal, error) {
	d, present, err := optionalAmount(raw, field)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !present {
		return decimal.Zero, nil
	}
	if d.LessThan(decimal.Zero) {
		return decimal.Decimal{}, &ValidationError{Field: field, Kind: ErrOutOfRange, Reason: "cannot be negative"}
	}
	return d, nil
}

func optionalBool(raw map[string]any, field string) (bool, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0", "":
			return false, nil
		}
	}
	return false, &ValidationError{Field: field, Kind: ErrInvalidValue, Reason: "must be a boolean"}
}
