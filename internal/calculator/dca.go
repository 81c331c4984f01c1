package calculator

import (
	"portfoliosim/internal/domain"

	"github.com/shopspring/decimal"
)

// valueDollarCostAverage buys monthlyContribution / numTickers of the
// ticker every month for months months.
//
// Month m is priced on a synthesized path between the buy and sell price:
//
//	buy + (sell - buy) * (m / months) * DcaPriceDampening
//
// Every month's cash counts as invested, even when that month's price is
// not positive and no shares could be bought.
func valueDollarCostAverage(
	ticker domain.TickerSelection,
	quote domain.PriceQuote,
	monthlyContribution decimal.Decimal,
	numTickers int,
	months int,
) domain.PositionResult {
	position := newPosition(ticker, quote)
	if months <= 0 {
		position.Status = domain.PositionStatus_NoContributions
		position.StatusReason = "horizon has no whole months"
		return settle(position)
	}

	perMonth := monthlyContribution.Div(decimal.NewFromInt(int64(numTickers)))
	position.Invested = perMonth.Mul(decimal.NewFromInt(int64(months)))

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

	total :=decimal.NewFromInt(int64(months))
	spread := quote.SellPrice.Sub(quote.BuyPrice)
	shares := decimal.Zero
	for m := 0; m < months; m++ {
		progress := decimal.NewFromInt(int64(m)).Div(total)
		priceAtMonth := quote.BuyPrice.Add(spread.Mul(progress).Mul(DcaPriceDampening))
		if priceAtMonth.IsPositive() {
			shares = shares.Add(perMonth.Div(priceAtMonth))
		}
	}

	position.Shares = shares
	return settle(position)
}
