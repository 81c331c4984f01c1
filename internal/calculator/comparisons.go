package calculator

import (
	"fmt"
	"math"

	"portfoliosim/internal/domain"

	"github.com/shopspring/decimal"
)

// compareBenchmarks prices the same cash in three alternatives: idle cash,
// a savings account and the market index.
func compareBenchmarks(
	cfg domain.SimulationConfig,
	benchmark domain.Benchmark,
	totalInvested decimal.Decimal,
) (domain.Comparisons, error) {
	out := domain.Comparisons{
		Mattress: totalInvested,
	}
	months := cfg.Months()
	marketReturn := benchmark.MarketReturn()

	switch cfg.Strategy {
	case domain.Strategy_LumpSum:
		growth, err := pow(decimal.NewFromInt(1).Add(benchmark.SavingsRate), cfg.YearsHeld())
		if err != nil {
			return out, err
		}
		out.SavingsAccount = cfg.Principal.Mul(growth)
		out.MarketIndex = cfg.Principal.Mul(decimal.NewFromInt(1).Add(marketReturn))

	case domain.Strategy_DollarCostAverage:
		if months <= 0 {
			out.SavingsAccount = decimal.Zero
			out.MarketIndex = decimal.Zero
			return out, nil
		}
		monthlySavingsRate := benchmark.SavingsRate.Div(decimal.NewFromInt(12))
		marketGrowth, err := pow(
			decimal.NewFromInt(1).Add(marketReturn),
			decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(months))),
		)
		if err != nil {
			return out, err
		}
		monthlyMarketRate := marketGrowth.Sub(decimal.NewFromInt(1))

		out.SavingsAccount = compoundContributions(cfg.MonthlyContribution, monthlySavingsRate, months)
		out.MarketIndex = compoundContributions(cfg.MonthlyContribution, monthlyMarketRate, months)
	}

	return out, nil
}

// keeps repeated multiplication from growing the mantissa every month
const internalPlaces = 16

// compoundContributions adds contribution every month, then grows the
// balance by monthlyRate.
func compoundContributions(contribution, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	balance := decimal.Zero
	growth := decimal.NewFromInt(1).Add(monthlyRate)
	for m := 0; m < months; m++ {
		balance = balance.Add(contribution).Mul(growth).Round(internalPlaces)
	}
	return balance
}

// pow goes through float64 because decimal has no cheap fractional power.
// A result outside float64 range is a ValidationError on the benchmark.
func pow(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	if exponent.IsZero() {
		return decimal.NewFromInt(1), nil
	}
	if base.IsZero() {
		return decimal.Zero, nil
	}
	f := math.Pow(base.InexactFloat64(), exponent.InexactFloat64())
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, domain.NewValidationError("benchmark", fmt.Sprintf("growth of %s over %s years is out of range", base, exponent))
	}
	return decimal.NewFromFloat(f), nil
}
