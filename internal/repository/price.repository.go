package repository

import (
	"context"
	"fmt"
	"time"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/util"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// PriceRepository resolves the buy/sell price pair of a symbol over a
// horizon. A symbol that cannot be priced returns a QuoteUnavailableError.
type PriceRepository interface {
	GetQuote(ctx context.Context, symbol string, startYear, endYear int) (*domain.PriceQuote, error)
}

type chartFetcher func(symbol string, start, end time.Time) ([]finance.ChartBar, error)

type yahooPriceRepositoryHandler struct {
	fetch chartFetcher
	now   func() time.Time
}

func NewYahooPriceRepository() PriceRepository {
	return yahooPriceRepositoryHandler{
		fetch: fetchDailyBars,
		now:   time.Now,
	}
}

func fetchDailyBars(symbol string, start, end time.Time) ([]finance.ChartBar, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	bars := []finance.ChartBar{}
	for iter.Next() {
		bars = append(bars, *iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return bars, nil
}

// GetQuote buys at the open of the first trading day of startYear and sells
// at the close of the last trading day through endYear.
func (h yahooPriceRepositoryHandler) GetQuote(ctx context.Context, symbol string, startYear, endYear int) (*domain.PriceQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, end := util.YearBounds(startYear, endYear)
	if now := h.now().UTC(); end.After(now) {
		end = now
	}
	if !util.DateLte(start, end) {
		return nil, &domain.QuoteUnavailableError{
			Symbol: symbol,
			Reason: fmt.Sprintf("%d has not started yet", startYear),
		}
	}

	bars, err := h.fetch(symbol, start, end)
	if err != nil {
		return nil, &domain.QuoteUnavailableError{
			Symbol: symbol,
			Reason: "price source request failed",
			Err:    err,
		}
	}

	quote, err := quoteFromBars(symbol, startYear, bars)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debugf("resolved %s %d-%d: buy %s sell %s", symbol, startYear, endYear, quote.BuyPrice, quote.SellPrice)

	return quote, nil
}

func quoteFromBars(symbol string, startYear int, bars []finance.ChartBar) (*domain.PriceQuote, error) {
	var buy, sell *finance.ChartBar
	for i := range bars {
		bar := bars[i]
		if buy == nil && bar.Open.IsPositive() && time.Unix(int64(bar.Timestamp), 0).UTC().Year() == startYear {
			buy = &bars[i]
		}
		if bar.Close.IsPositive() {
			sell = &bars[i]
		}
	}

	if buy == nil {
		return nil, &domain.QuoteUnavailableError{
			Symbol: symbol,
			Reason: fmt.Sprintf("no price data available in %d", startYear),
		}
	}
	if sell == nil || sell.Timestamp < buy.Timestamp {
		return nil, &domain.QuoteUnavailableError{
			Symbol: symbol,
			Reason: "no closing price available for this period",
		}
	}

	return &domain.PriceQuote{
		Symbol:    symbol,
		BuyPrice:  buy.Open,
		SellPrice: sell.Close,
	}, nil
}
