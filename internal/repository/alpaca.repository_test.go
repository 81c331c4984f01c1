package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/stretchr/testify/require"
)

func Test_alpacaRepositoryHandler_GetLatestPrices(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 10, 16, 19, 59, 0, 0, time.UTC)

	t.Run("zero bids are skipped", func(t *testing.T) {
		handler := alpacaRepositoryHandler{
			latestQuotes: func(symbols []string) (map[string]marketdata.Quote, error) {
				require.Equal(t, []string{"AAPL", "XYZ"}, symbols)
				return map[string]marketdata.Quote{
					"AAPL": {BidPrice: 251.3, AskPrice: 251.4, Timestamp: ts},
					"XYZ":  {BidPrice: 0, Timestamp: ts},
				}, nil
			},
		}

		prices, err := handler.GetLatestPrices(ctx, []string{"AAPL", "XYZ"})
		require.NoError(t, err)
		require.Len(t, prices, 1)
		require.Equal(t, "251.3", prices["AAPL"].Price.String())
		require.Equal(t, ts, prices["AAPL"].Date)
	})

	t.Run("no symbols", func(t *testing.T) {
		prices, err := alpacaRepositoryHandler{}.GetLatestPrices(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, prices)
	})

	t.Run("client error", func(t *testing.T) {
		handler := alpacaRepositoryHandler{
			latestQuotes: func(symbols []string) (map[string]marketdata.Quote, error) {
				return nil, errors.New("forbidden")
			},
		}
		_, err := handler.GetLatestPrices(ctx, []string{"AAPL"})
		require.Error(t, err)
	})
}
