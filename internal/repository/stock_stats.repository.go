package repository

import (
	"context"
	"fmt"
	"strings"

	"portfoliosim/internal/domain"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"
)

type StockStatsRepository interface {
	GetStats(ctx context.Context, symbol string) (*domain.StockStats, error)
}

type stockStatsRepositoryHandler struct {
	fetch func(symbol string) (*finance.Equity, error)
}

func NewStockStatsRepository() StockStatsRepository {
	return stockStatsRepositoryHandler{
		fetch: equity.Get,
	}
}

func (h stockStatsRepositoryHandler) GetStats(ctx context.Context, symbol string) (*domain.StockStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.NewValidationError("symbol", "missing stock symbol")
	}

	e, err := h.fetch(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for %s: %w", symbol, err)
	}
	if e == nil || e.Symbol == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	}

	return &domain.StockStats{
		Symbol:                  e.Symbol,
		ShortName:               e.ShortName,
		TrailingEps:             nonZero(e.EpsTrailingTwelveMonths),
		EpsTrailingTwelveMonths: nonZero(e.EpsTrailingTwelveMonths),
		ForwardEps:              nonZero(e.EpsForward),
		ForwardPE:               nonZero(e.ForwardPE),
		TrailingPE:              nonZero(e.TrailingPE),
		DividendYield:           nonZero(e.TrailingAnnualDividendYield),
		MarketCap:               nonZeroInt(e.MarketCap),
		Currency:                e.CurrencyID,
	}, nil
}

// yahoo leaves fields it has no value for at zero
func nonZero(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

func nonZeroInt(i int64) *int64 {
	if i == 0 {
		return nil
	}
	return &i
}
