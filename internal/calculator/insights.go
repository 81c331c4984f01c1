package calculator

import (
	"fmt"
	"math"

	"portfoliosim/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type FunPurchase struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int64           `json:"quantity"`
}

var funPurchaseItems = []FunPurchase{
	{Name: "cups of coffee", UnitPrice: decimal.NewFromFloat(5.50)},
	{Name: "Netflix subscriptions (monthly)", UnitPrice: decimal.NewFromFloat(15.49)},
	{Name: "Chipotle burritos", UnitPrice: decimal.NewFromFloat(12.50)},
	{Name: "movie tickets", UnitPrice: decimal.NewFromFloat(15.00)},
	{Name: "gallons of gas", UnitPrice: decimal.NewFromFloat(3.25)},
	{Name: "paperback books", UnitPrice: decimal.NewFromFloat(16.00)},
}

// FunPurchases translates the gain, or the whole value when there was no
// gain, into everyday items. Items the amount cannot buy once are dropped.
func FunPurchases(result domain.PortfolioResult) []FunPurchase {
	amount := result.TotalValue
	if result.TotalGain.IsPositive() {
		amount = result.TotalGain
	}

	out := []FunPurchase{}
	for _, item := range funPurchaseItems {
		quantity := amount.Div(item.UnitPrice).Floor().IntPart()
		if quantity <= 0 {
			continue
		}
		item.Quantity = quantity
		out = append(out, item)
	}
	return out
}

type PositionSpread struct {
	BestSymbol         string  `json:"bestSymbol"`
	BestGainPercent    float64 `json:"bestGainPercent"`
	WorstSymbol        string  `json:"worstSymbol"`
	WorstGainPercent   float64 `json:"worstGainPercent"`
	MedianGainPercent  float64 `json:"medianGainPercent"`
	StdevGainPercent   float64 `json:"stdevGainPercent"`
	UnavailableSymbols int     `json:"unavailableSymbols"`
}

// CalculatePositionSpread summarizes how far apart the picks ended up.
// Failed positions are included at their -100% (or 0% when nothing was
// invested), since that is what the user experienced.
func CalculatePositionSpread(result domain.PortfolioResult) (*PositionSpread, error) {
	if len(result.Positions) == 0 {
		return nil, fmt.Errorf("cannot calculate spread of an empty portfolio")
	}

	out := PositionSpread{}
	gains := make([]float64, 0, len(result.Positions))
	for i, p := range result.Positions {
		g := p.GainPercent.InexactFloat64()
		gains = append(gains, g)
		if i == 0 || g > out.BestGainPercent {
			out.BestSymbol = p.Symbol
			out.BestGainPercent = g
		}
		if i == 0 || g < out.WorstGainPercent {
			out.WorstSymbol = p.Symbol
			out.WorstGainPercent = g
		}
		if p.Status == domain.PositionStatus_QuoteUnavailable {
			out.UnavailableSymbols++
		}
	}

	median, err := stats.Median(gains)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate median gain: %w", err)
	}
	stdev, err := stats.StandardDeviationPopulation(gains)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate gain stdev: %w", err)
	}
	out.MedianGainPercent = median
	out.StdevGainPercent = stdev

	return &out, nil
}

// AnnualizedReturn is the compound annual growth rate of the portfolio, as
// a fraction. Zero when the horizon or the invested amount is empty, or
// when the rate does not fit in a float64.
func AnnualizedReturn(result domain.PortfolioResult) float64 {
	years := result.YearsHeld.InexactFloat64()
	invested := result.TotalInvested.InexactFloat64()
	if years <= 0 || invested <= 0 {
		return 0
	}
	value := result.TotalValue.InexactFloat64()
	if value <= 0 {
		return -1
	}
	r := math.Pow(value/invested, 1/years) - 1
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0
	}
	return r
}

type Insights struct {
	FunPurchases     []FunPurchase   `json:"funPurchases"`
	Spread           *PositionSpread `json:"spread"`
	AnnualizedReturn float64         `json:"annualizedReturn"`
}

func ComputeInsights(result domain.PortfolioResult) (*Insights, error) {
	spread, err := CalculatePositionSpread(result)
	if err != nil {
		return nil, err
	}
	return &Insights{
		FunPurchases:     FunPurchases(result),
		Spread:           spread,
		AnnualizedReturn: AnnualizedReturn(result),
	}, nil
}
