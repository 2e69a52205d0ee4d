package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// FutureValue compounds an initial amount plus a monthly contribution over
// the given number of years at the given nominal annual rate, compounded
// monthly:
//
//	initial * (1+r/12)^(12y) + monthly * (((1+r/12)^(12y) - 1) / (r/12))
//
// A zero rate degenerates to linear accumulation; the guard avoids the
// division by zero in the annuity term.
func FutureValue(monthlyContribution decimal.Decimal, years int, annualRate decimal.Decimal, initialAmount decimal.Decimal) decimal.Decimal {
	if years <= 0 {
		return initialAmount
	}
	months := decimal.NewFromInt(int64(years) * 12)

	if annualRate.IsZero() {
		return initialAmount.Add(monthlyContribution.Mul(months))
	}

	monthlyRate := annualRate.Div(decimalTwelve)
	growth := decimalOne.Add(monthlyRate).Pow(months)

	principal := initialAmount.Mul(growth)
	annuity := monthlyContribution.Mul(growth.Sub(decimalOne).Div(monthlyRate))
	return principal.Add(annuity)
}

// RequiredSavings computes the present value, at retirement, of an
// inflation-adjusted annuity paying desiredMonthlyIncome for
// yearsInRetirement years. The nominal post-retirement return is first
// deflated to a real rate, (1+nominal)/(1+inflation) - 1, then the
// standard annuity present value formula runs at the monthly real rate.
func RequiredSavings(desiredMonthlyIncome decimal.Decimal, yearsInRetirement int, inflationRate, investmentReturnRate decimal.Decimal) decimal.Decimal {
	if yearsInRetirement <= 0 || desiredMonthlyIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(yearsInRetirement) * 12)

	realAnnual := decimalOne.Add(investmentReturnRate).
		Div(decimalOne.Add(inflationRate)).
		Sub(decimalOne)
	monthlyRate := realAnnual.Div(decimalTwelve)

	// A real return of exactly zero (nominal == inflation) degenerates to
	// paying the income straight out of capital.
	if monthlyRate.IsZero() {
		return desiredMonthlyIncome.Mul(months)
	}

	growth := decimalOne.Add(monthlyRate).Pow(months)
	return desiredMonthlyIncome.Mul(decimalOne.Sub(decimalOne.Div(growth))).Div(monthlyRate)
}

// scenarioSpread is the band width around the expected return for the
// pessimistic and optimistic projections.
var scenarioSpread = decimal.NewFromFloat(0.02)

// ProjectionBands recomputes the future value at expected -/+ 2 percentage
// points. The pessimistic rate is floored at zero so the band never models
// a guaranteed loss.
func ProjectionBands(monthlyContribution decimal.Decimal, years int, annualRate decimal.Decimal, initialAmount decimal.Decimal) (pessimistic, expected, optimistic decimal.Decimal) {
	low := annualRate.Sub(scenarioSpread)
	if low.LessThan(decimal.Zero) {
		low = decimal.Zero
	}
	high := annualRate.Add(scenarioSpread)

	pessimistic = FutureValue(monthlyContribution, years, low, initialAmount)
	expected = FutureValue(monthlyContribution, years, annualRate, initialAmount)
	optimistic = FutureValue(monthlyContribution, years, high, initialAmount)
	return pessimistic, expected, optimistic
}
