package repository

import (
	"context"
	"errors"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/util"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bar(date time.Time, open, close float64) finance.ChartBar {
	return finance.ChartBar{
		Open:      decimal.NewFromFloat(open),
		Close:     decimal.NewFromFloat(close),
		AdjClose:  decimal.NewFromFloat(close),
		Timestamp: int(date.Unix()),
	}
}

func Test_yahooPriceRepositoryHandler_GetQuote(t *testing.T) {
	now := util.NewDate(2026, 10, 18)
	ctx := context.Background()

	t.Run("first open and last close", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		handler := yahooPriceRepositoryHandler{
			now: func() time.Time { return now },
			fetch: func(symbol string, start, end time.Time) ([]finance.ChartBar, error) {
				gotStart, gotEnd = start, end
				return []finance.ChartBar{
					bar(util.NewDate(2020, 1, 2), 0, 0),
					bar(util.NewDate(2020, 1, 3), 74.5, 75),
					bar(util.NewDate(2021, 6, 1), 120, 124),
					bar(util.NewDate(2022, 12, 30), 129.5, 130.25),
				}, nil
			},
		}

		quote, err := handler.GetQuote(ctx, "AAPL", 2020, 2022)
		require.NoError(t, err)
		require.Equal(t, "AAPL", quote.Symbol)
		require.Equal(t, "74.5", quote.BuyPrice.String())
		require.Equal(t, "130.25", quote.SellPrice.String())
		require.Equal(t, util.NewDate(2020, 1, 1), gotStart)
		require.Equal(t, 2022, gotEnd.Year())
		require.Equal(t, time.December, gotEnd.Month())
	})

	t.Run("current year ends now", func(t *testing.T) {
		handler := yahooPriceRepositoryHandler{
			now: func() time.Time { return now },
			fetch: func(symbol string, start, end time.Time) ([]finance.ChartBar, error) {
				require.Equal(t, now, end)
				return []finance.ChartBar{
					bar(util.NewDate(2025, 1, 2), 10, 11),
					bar(util.NewDate(2026, 10, 16), 20, 21),
				}, nil
			},
		}
		quote, err := handler.GetQuote(ctx, "MSFT", 2025, 2026)
		require.NoError(t, err)
		require.Equal(t, "21", quote.SellPrice.String())
	})

	t.Run("listed after the start year", func(t *testing.T) {
		handler := yahooPriceRepositoryHandler{
			now: func() time.Time { return now },
			fetch: func(symbol string, start, end time.Time) ([]finance.ChartBar, error) {
				return []finance.ChartBar{
					bar(util.NewDate(2012, 5, 18), 42, 38),
				}, nil
			},
		}
		_, err := handler.GetQuote(ctx, "META", 2010, 2015)

		var quoteErr *domain.QuoteUnavailableError
		require.True(t, errors.As(err, &quoteErr))
		require.Equal(t, "META", quoteErr.Symbol)
	})

	t.Run("source error is wrapped", func(t *testing.T) {
		sourceErr := errors.New("429 too many requests")
		handler := yahooPriceRepositoryHandler{
			now: func() time.Time { return now },
			fetch: func(symbol string, start, end time.Time) ([]finance.ChartBar, error) {
				return nil, sourceErr
			},
		}
		_, err := handler.GetQuote(ctx, "NVDA", 2020, 2021)
		require.ErrorIs(t, err, sourceErr)

		var quoteErr *domain.QuoteUnavailableError
		require.True(t, errors.As(err, &quoteErr))
	})

	t.Run("future start year", func(t *testing.T) {
		handler := yahooPriceRepositoryHandler{
			now: func() time.Time { return now },
			fetch: func(symbol string, start, end time.Time) ([]finance.ChartBar, error) {
				t.Fatal("should not fetch")
				return nil, nil
			},
		}
		_, err := handler.GetQuote(ctx, "NVDA", 2027, 2028)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewYahooPriceRepository().GetQuote(cancelled, "AAPL", 2020, 2021)
		require.ErrorIs(t, err, context.Canceled)
	})
}
