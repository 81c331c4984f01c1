package calculator

import (
	"portfoliosim/internal/domain"

	"github.com/shopspring/decimal"
)

// DcaPriceDampening biases the synthesized monthly price path toward the
// buy price. The path is a disclosed approximation for dollar-cost
// averaging, not a simulation of real prices.
var DcaPriceDampening = decimal.NewFromFloat(0.7)

// DefaultSavingsRate is the annual rate of the savings account comparison.
var DefaultSavingsRate = decimal.NewFromFloat(0.045)

// Simulate values every selected ticker, aggregates the portfolio and
// compares it against the benchmarks. It is a pure function of its inputs.
//
// A symbol missing from quotes, or mapped to an unavailable quote, becomes
// a zero-value position. Only a malformed config or benchmark is an error.
func Simulate(
	cfg domain.SimulationConfig,
	quotes map[string]domain.PriceQuote,
	benchmark domain.Benchmark,
) (*domain.PortfolioResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !benchmark.IndexLevelAtStart.IsPositive() || benchmark.IndexLevelNow.IsNegative() {
		return nil, domain.NewValidationError("benchmark", "index levels must be positive")
	}
	if benchmark.SavingsRate.IsNegative() {
		return nil, domain.NewValidationError("benchmark", "savings rate cannot be negative")
	}

	months := cfg.Months()
	positions := make([]domain.PositionResult, 0, len(cfg.Tickers))
	for _, ticker := range cfg.Tickers {
		quote, ok := quotes[ticker.Symbol]
		if !ok {
			quote = domain.PriceQuote{
				Symbol: ticker.Symbol,
				Err: &domain.QuoteUnavailableError{
					Symbol: ticker.Symbol,
					Reason: "no quote resolved",
				},
			}
		}

		var position domain.PositionResult
		switch cfg.Strategy {
		case domain.Strategy_LumpSum:
			position = valueLumpSum(ticker, quote, cfg.Principal, len(cfg.Tickers))
		case domain.Strategy_DollarCostAverage:
			position = valueDollarCostAverage(ticker, quote, cfg.MonthlyContribution, len(cfg.Tickers), months)
		}
		positions = append(positions, position)
	}

	result := aggregate(positions)
	result.Strategy = cfg.Strategy
	result.StartYear = cfg.StartYear
	result.EndYear = cfg.EndYear
	result.MonthsHeld = months
	result.YearsHeld = cfg.YearsHeld()
	comparisons, err := compareBenchmarks(cfg, benchmark, result.TotalInvested)
	if err != nil {
		return nil, err
	}
	result.Comparisons = comparisons

	return &result, nil
}

func aggregate(positions []domain.PositionResult) domain.PortfolioResult {
	totalInvested := decimal.Zero
	totalValue := decimal.Zero
	for _, p := range positions {
		totalInvested = totalInvested.Add(p.Invested)
		totalValue = totalValue.Add(p.FinalValue)
	}
	totalGain := totalValue.Sub(totalInvested)

	return domain.PortfolioResult{
		Positions:        positions,
		TotalInvested:    totalInvested,
		TotalValue:       totalValue,
		TotalGain:        totalGain,
		TotalGainPercent: domain.PercentOf(totalGain, totalInvested),
	}
}

func newPosition(ticker domain.TickerSelection, quote domain.PriceQuote) domain.PositionResult {
	return domain.PositionResult{
		Symbol:     ticker.Symbol,
		Name:       ticker.Name,
		Category:   ticker.Category,
		BuyPrice:   quote.BuyPrice,
		SellPrice:  quote.SellPrice,
		Invested:   decimal.Zero,
		Shares:     decimal.Zero,
		FinalValue: decimal.Zero,
		Status:     domain.PositionStatus_Ok,
	}
}

// settle fills the derived fields once invested, shares and status are set.
func settle(p domain.PositionResult) domain.PositionResult {
	if p.Failed() {
		p.Shares = decimal.Zero
		p.FinalValue = decimal.Zero
	} else {
		p.FinalValue = p.Shares.Mul(p.SellPrice)
	}
	p.Gain = p.FinalValue.Sub(p.Invested)
	p.GainPercent = domain.PercentOf(p.Gain, p.Invested)
	return p
}

func unavailableReason(quote domain.PriceQuote) (string, bool) {
	if !quote.Available() {
		return quote.Err.Error(), true
	}
	if quote.SellPrice.IsNegative() {
		return "negative sell price", true
	}
	return "", false
}
