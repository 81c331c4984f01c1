package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// QuoteKey identifies a resolved quote in caches.
type QuoteKey struct {
	Symbol    string
	StartYear int
	EndYear   int
}

// StockStats are the fundamentals shown next to a ticker when the user
// picks it. Any field may be nil when the data source has no value.
type StockStats struct {
	Symbol                  string   `json:"symbol"`
	ShortName               string   `json:"shortName"`
	TrailingEps             *float64 `json:"trailingEps"`
	EpsTrailingTwelveMonths *float64 `json:"epsTrailingTwelveMonths"`
	ForwardEps              *float64 `json:"forwardEps"`
	ForwardPE               *float64 `json:"forwardPE"`
	TrailingPE              *float64 `json:"trailingPE"`
	DividendYield           *float64 `json:"dividendYield"`
	MarketCap               *int64   `json:"marketCap"`
	Currency                string   `json:"currency"`
}
