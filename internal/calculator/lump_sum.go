package calculator

import (
	"portfoliosim/internal/domain"

	"github.com/shopspring/decimal"
)

// valueLumpSum gives the ticker an equal share of the principal and buys
// at the quote's buy price. A failed quote keeps its allocation as
// invested capital with no value, so the loss shows up in the totals.
func valueLumpSum(
	ticker domain.TickerSelection,
	quote domain.PriceQuote,
	principal decimal.Decimal,
	numTickers int,
) domain.PositionResult {
	position := newPosition(ticker, quote)
	position.Invested = principal.Div(decimal.NewFromInt(int64(numTickers)))

	if reason, failed := unavailableReason(quote); failed {
		position.Status = domain.PositionStatus_QuoteUnavailable
		position.StatusReason = reason
		return settle(position)
	}
	if !quote.BuyPrice.IsPositive() {
		position.Status = domain.PositionStatus_QuoteUnavailable
		position.StatusReason = "buy price must be positive"
		return settle(position)
	}

	position.Shares = position.Invested.Div(quote.BuyPrice)
	return settle(position)
}
