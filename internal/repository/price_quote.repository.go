package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	. "portfoliosim/internal/db/models/postgres/public/table"
	"portfoliosim/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

// PriceQuoteRepository is the durable tier behind the in-memory quote
// cache. Get returns nil when nothing is stored for the key.
type PriceQuoteRepository interface {
	Get(key domain.QuoteKey) (*domain.PriceQuote, error)
	Upsert(key domain.QuoteKey, quote domain.PriceQuote) error
}

type priceQuoteRepositoryHandler struct {
	Db *sql.DB
}

func NewPriceQuoteRepository(db *sql.DB) PriceQuoteRepository {
	return priceQuoteRepositoryHandler{Db: db}
}

func (h priceQuoteRepositoryHandler) Get(key domain.QuoteKey) (*domain.PriceQuote, error) {
	query := PriceQuote.
		SELECT(PriceQuote.AllColumns).
		WHERE(
			AND(
				PriceQuote.Symbol.EQ(String(key.Symbol)),
				PriceQuote.StartYear.EQ(Int(int64(key.StartYear))),
				PriceQuote.EndYear.EQ(Int(int64(key.EndYear))),
			),
		).
		LIMIT(1)

	result := model.PriceQuote{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query price quote for %s: %w", key.Symbol, err)
	}

	return &domain.PriceQuote{
		Symbol:    result.Symbol,
		BuyPrice:  decimal.NewFromFloat(result.BuyPrice),
		SellPrice: decimal.NewFromFloat(result.SellPrice),
	}, nil
}

func (h priceQuoteRepositoryHandler) Upsert(key domain.QuoteKey, quote domain.PriceQuote) error {
	if !quote.Available() {
		return fmt.Errorf("cannot store unavailable quote for %s", key.Symbol)
	}
	now := time.Now().UTC()
	m := model.PriceQuote{
		Symbol:    key.Symbol,
		StartYear: int32(key.StartYear),
		EndYear:   int32(key.EndYear),
		BuyPrice:  quote.BuyPrice.InexactFloat64(),
		SellPrice: quote.SellPrice.InexactFloat64(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	query := PriceQuote.
		INSERT(PriceQuote.MutableColumns).
		MODEL(m).
		ON_CONFLICT(
			PriceQuote.Symbol, PriceQuote.StartYear, PriceQuote.EndYear,
		).DO_UPDATE(
		SET(
			PriceQuote.BuyPrice.SET(PriceQuote.EXCLUDED.BuyPrice),
			PriceQuote.SellPrice.SET(PriceQuote.EXCLUDED.SellPrice),
			PriceQuote.UpdatedAt.SET(PriceQuote.EXCLUDED.UpdatedAt),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert price quote for %s: %w", key.Symbol, err)
	}

	return nil
}
