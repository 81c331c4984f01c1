package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validConfig() SimulationConfig {
	return SimulationConfig{
		StartYear: 2015,
		EndYear:   2025,
		Principal: decimal.NewFromInt(10000),
		Strategy:  Strategy_LumpSum,
		Tickers: []TickerSelection{
			{Symbol: "AAPL", Name: "Apple", Category: "tech"},
			{Symbol: "MSFT", Name: "Microsoft", Category: "tech"},
		},
	}
}

func TestSimulationConfig_Validate(t *testing.T) {
	t.Run("valid lump sum", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("valid dca", func(t *testing.T) {
		cfg := validConfig()
		cfg.Strategy = Strategy_DollarCostAverage
		cfg.Principal = decimal.Zero
		cfg.MonthlyContribution = decimal.NewFromInt(500)
		require.NoError(t, cfg.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*SimulationConfig)
		field  string
	}{
		{
			name:   "no tickers",
			mutate: func(c *SimulationConfig) { c.Tickers = nil },
			field:  "tickers",
		},
		{
			name:   "empty symbol",
			mutate: func(c *SimulationConfig) { c.Tickers[0].Symbol = "" },
			field:  "tickers",
		},
		{
			name:   "lowercase symbol",
			mutate: func(c *SimulationConfig) { c.Tickers[0].Symbol = "aapl" },
			field:  "tickers",
		},
		{
			name:   "duplicate symbol",
			mutate: func(c *SimulationConfig) { c.Tickers[1].Symbol = "AAPL" },
			field:  "tickers",
		},
		{
			name:   "start after end",
			mutate: func(c *SimulationConfig) { c.StartYear = 2026 },
			field:  "startYear",
		},
		{
			name:   "start year before supported range",
			mutate: func(c *SimulationConfig) { c.StartYear = 1 },
			field:  "startYear",
		},
		{
			name:   "end year after supported range",
			mutate: func(c *SimulationConfig) { c.EndYear = 20001 },
			field:  "endYear",
		},
		{
			name:   "month offset out of range",
			mutate: func(c *SimulationConfig) { c.EndMonthOffset = 12 },
			field:  "endMonthOffset",
		},
		{
			name:   "zero principal",
			mutate: func(c *SimulationConfig) { c.Principal = decimal.Zero },
			field:  "principal",
		},
		{
			name:   "negative principal",
			mutate: func(c *SimulationConfig) { c.Principal = decimal.NewFromInt(-5) },
			field:  "principal",
		},
		{
			name: "dca without contribution",
			mutate: func(c *SimulationConfig) {
				c.Strategy = Strategy_DollarCostAverage
			},
			field: "monthlyContribution",
		},
		{
			name:   "unknown strategy",
			mutate: func(c *SimulationConfig) { c.Strategy = "YOLO" },
			field:  "strategy",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.Equal(t, tc.field, validationErr.Field)
			require.True(t, IsValidationError(err))
		})
	}
}

func TestNewSimulationConfig(t *testing.T) {
	tickers := []TickerSelection{{Symbol: "AAPL"}}
	cfg, err := NewSimulationConfig(2020, 2024, 3, decimal.NewFromInt(100), Strategy_LumpSum, decimal.Zero, tickers)
	require.NoError(t, err)

	tickers[0].Symbol = "MSFT"
	require.Equal(t, "AAPL", cfg.Tickers[0].Symbol)

	_, err = NewSimulationConfig(2020, 2024, 3, decimal.Zero, Strategy_LumpSum, decimal.Zero, tickers)
	require.True(t, IsValidationError(err))
}

func TestSimulationConfig_Months(t *testing.T) {
	cfg := validConfig()
	require.Equal(t, 120, cfg.Months())
	require.Equal(t, "10", cfg.YearsHeld().String())

	cfg.EndMonthOffset = 9
	require.Equal(t, 129, cfg.Months())
	require.Equal(t, "10.75", cfg.YearsHeld().String())

	cfg.StartYear = 2025
	cfg.EndMonthOffset = 0
	require.Equal(t, 0, cfg.Months())
	require.True(t, cfg.YearsHeld().IsZero())

	require.Equal(t, []string{"AAPL", "MSFT"}, validConfig().Symbols())
}

func TestNewStrategy(t *testing.T) {
	for input, expected := range map[string]Strategy{
		"LUMP_SUM":            Strategy_LumpSum,
		"lumpSum":             Strategy_LumpSum,
		"lump":                Strategy_LumpSum,
		"DOLLAR_COST_AVERAGE": Strategy_DollarCostAverage,
		"dollarCostAverage":   Strategy_DollarCostAverage,
		"dca":                 Strategy_DollarCostAverage,
	} {
		s, err := NewStrategy(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, *s)
	}

	_, err := NewStrategy("monthly")
	require.Error(t, err)
}

func TestBenchmark_MarketReturn(t *testing.T) {
	b := Benchmark{
		IndexLevelAtStart: decimal.NewFromInt(1000),
		IndexLevelNow:     decimal.NewFromInt(2500),
	}
	require.Equal(t, "1.5", b.MarketReturn().String())

	require.True(t, Benchmark{}.MarketReturn().IsZero())
}

func TestPortfolioResult_Rounded(t *testing.T) {
	third := decimal.NewFromInt(10000).Div(decimal.NewFromInt(3))
	result := PortfolioResult{
		YearsHeld: decimal.NewFromInt(5),
		Positions: []PositionResult{
			{
				Symbol:     "A",
				BuyPrice:   decimal.RequireFromString("12.345678"),
				SellPrice:  decimal.RequireFromString("20.111111"),
				Invested:   third,
				Shares:     third.Div(decimal.RequireFromString("12.345678")),
				FinalValue: decimal.RequireFromString("5432.105"),
				Status:     PositionStatus_Ok,
			},
			{
				Symbol:       "B",
				Invested:     third,
				Shares:       decimal.Zero,
				FinalValue:   decimal.Zero,
				Status:       PositionStatus_QuoteUnavailable,
				StatusReason: "no data",
			},
		},
		Comparisons: Comparisons{
			SavingsAccount: decimal.RequireFromString("8123.456"),
			MarketIndex:    decimal.RequireFromString("9000.004"),
		},
	}

	rounded := result.Rounded()

	require.Equal(t, "3333.34", rounded.Positions[0].Invested.String())
	require.Equal(t, "3333.33", rounded.Positions[1].Invested.String())
	require.Equal(t, "5432.11", rounded.Positions[0].FinalValue.String())
	require.Equal(t, "2098.77", rounded.Positions[0].Gain.String())
	require.Equal(t, "12.3457", rounded.Positions[0].BuyPrice.String())
	require.Equal(t, "270", rounded.Positions[0].Shares.Round(0).String())
	require.Equal(t, "-3333.33", rounded.Positions[1].Gain.String())
	require.Equal(t, "-100", rounded.Positions[1].GainPercent.String())

	require.Equal(t, "6666.67", rounded.TotalInvested.String())
	require.Equal(t, "5432.11", rounded.TotalValue.String())
	require.Equal(t, "-1234.56", rounded.TotalGain.String())
	require.True(t, rounded.Comparisons.Mattress.Equal(rounded.TotalInvested))
	require.Equal(t, "8123.46", rounded.Comparisons.SavingsAccount.String())
	require.Equal(t, "9000", rounded.Comparisons.MarketIndex.String())

	// the unrounded result is untouched
	require.Equal(t, third.String(), result.Positions[0].Invested.String())
	require.Equal(t, []string{"B"}, rounded.FailedSymbols())
}

func TestPortfolioResult_RoundedKeepsTotals(t *testing.T) {
	for _, n := range []int64{3, 6, 7, 9} {
		share := decimal.NewFromInt(10000).Div(decimal.NewFromInt(n))
		result := PortfolioResult{}
		for i := int64(0); i < n; i++ {
			result.Positions = append(result.Positions, PositionResult{
				Symbol:     fmt.Sprintf("S%d", i),
				Invested:   share,
				FinalValue: share.Mul(decimal.NewFromFloat(1.5)),
				Status:     PositionStatus_Ok,
			})
		}

		rounded := result.Rounded()
		require.Equal(t, "10000", rounded.TotalInvested.String(), "n=%d", n)
		require.Equal(t, "15000", rounded.TotalValue.String(), "n=%d", n)
		require.True(t, rounded.Comparisons.Mattress.Equal(rounded.TotalInvested))

		// no position is more than a cent away from its exact share
		for _, p := range rounded.Positions {
			require.True(t, p.Invested.Sub(share).Abs().LessThan(decimal.NewFromFloat(0.01)), p.Invested.String())
			require.True(t, p.Gain.Equal(p.FinalValue.Sub(p.Invested)))
		}
		// leftover cents go to the earliest positions
		require.True(t, rounded.Positions[0].Invested.GreaterThanOrEqual(rounded.Positions[n-1].Invested))
	}
}

func TestPercentOf(t *testing.T) {
	require.True(t, PercentOf(decimal.NewFromInt(5), decimal.Zero).IsZero())
	require.Equal(t, "25", PercentOf(decimal.NewFromInt(25), decimal.NewFromInt(100)).String())
}
