package repository

import (
	"context"
	"fmt"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// LatestPriceRepository prices symbols at the most recent bid. It is used
// to value a horizon that ends in the current year.
type LatestPriceRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]domain.AssetPrice, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) LatestPriceRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		latestQuotes: func(symbols []string) (map[string]marketdata.Quote, error) {
			return mdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
		},
	}
}

type alpacaRepositoryHandler struct {
	latestQuotes func(symbols []string) (map[string]marketdata.Quote, error)
}

// GetLatestPrices skips symbols quoted at zero rather than failing the
// whole batch; callers fall back to the historical close for those.
func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]domain.AssetPrice{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results, err := h.latestQuotes(symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest quotes: %w", err)
	}

	out := map[string]domain.AssetPrice{}
	for symbol, result := range results {
		price := decimal.NewFromFloat(result.BidPrice)
		if !price.IsPositive() {
			log.Warnf("got %s bid price for %s, skipping", price.String(), symbol)
			continue
		}
		out[symbol] = domain.AssetPrice{
			Symbol: symbol,
			Price:  price,
			Date:   result.Timestamp.UTC(),
		}
	}

	return out, nil
}
