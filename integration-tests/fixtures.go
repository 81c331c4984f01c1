package integration_tests

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/repository"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

//go:embed sample_annual_prices.csv
var sampleAnnualPrices []byte

type annualPriceRow struct {
	Symbol string  `csv:"symbol"`
	Year   int     `csv:"year"`
	Open   float64 `csv:"open"`
	Close  float64 `csv:"close"`
}

type fixturePriceRepositoryHandler struct {
	opens  map[string]map[int]decimal.Decimal
	closes map[string]map[int]decimal.Decimal
}

// NewFixturePriceRepositoryForTests prices symbols from a small table of
// yearly opens and closes so end to end runs never reach Yahoo.
func NewFixturePriceRepositoryForTests() (repository.PriceRepository, error) {
	rows := []annualPriceRow{}
	if err := gocsv.UnmarshalBytes(sampleAnnualPrices, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse price fixtures: %w", err)
	}

	h := fixturePriceRepositoryHandler{
		opens:  map[string]map[int]decimal.Decimal{},
		closes: map[string]map[int]decimal.Decimal{},
	}
	for _, row := range rows {
		if _, ok := h.opens[row.Symbol]; !ok {
			h.opens[row.Symbol] = map[int]decimal.Decimal{}
			h.closes[row.Symbol] = map[int]decimal.Decimal{}
		}
		h.opens[row.Symbol][row.Year] = decimal.NewFromFloat(row.Open)
		h.closes[row.Symbol][row.Year] = decimal.NewFromFloat(row.Close)
	}
	return h, nil
}

func (h fixturePriceRepositoryHandler) GetQuote(ctx context.Context, symbol string, startYear, endYear int) (*domain.PriceQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buy, ok := h.opens[symbol][startYear]
	if !ok {
		return nil, &domain.QuoteUnavailableError{Symbol: symbol, Reason: fmt.Sprintf("no fixture open for %d", startYear)}
	}
	// the last year on file stands in for years after it
	closeYear := endYear
	for closeYear > startYear {
		if _, ok := h.closes[symbol][closeYear]; ok {
			break
		}
		closeYear--
	}
	sell, ok := h.closes[symbol][closeYear]
	if !ok {
		return nil, &domain.QuoteUnavailableError{Symbol: symbol, Reason: fmt.Sprintf("no fixture close for %d", endYear)}
	}

	return &domain.PriceQuote{
		Symbol:    symbol,
		BuyPrice:  buy,
		SellPrice: sell,
	}, nil
}

type fixtureLatestPriceRepositoryHandler struct{}

func NewFixtureLatestPriceRepositoryForTests() repository.LatestPriceRepository {
	return fixtureLatestPriceRepositoryHandler{}
}

func (fixtureLatestPriceRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]domain.AssetPrice, error) {
	latest := map[string]float64{
		"AAPL": 247.10,
		"MSFT": 514.05,
		"XOM":  112.36,
	}
	out := map[string]domain.AssetPrice{}
	for _, symbol := range symbols {
		if price, ok := latest[symbol]; ok {
			out[symbol] = domain.AssetPrice{
				Symbol: symbol,
				Price:  decimal.NewFromFloat(price),
				Date:   time.Now().UTC(),
			}
		}
	}
	return out, nil
}
