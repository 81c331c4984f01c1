package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type Strategy string

const (
	// invest the whole principal on day one
	Strategy_LumpSum Strategy = "LUMP_SUM"
	// invest a fixed amount every month
	Strategy_DollarCostAverage Strategy = "DOLLAR_COST_AVERAGE"
)

func NewStrategy(s string) (*Strategy, error) {
	m := map[string]Strategy{
		"LUMP_SUM":            Strategy_LumpSum,
		"LUMP":                Strategy_LumpSum,
		"DOLLAR_COST_AVERAGE": Strategy_DollarCostAverage,
		"DCA":                 Strategy_DollarCostAverage,
	}
	for k, v := range m {
		if strings.EqualFold(
			strings.ReplaceAll(k, "_", ""),
			strings.ReplaceAll(s, "_", ""),
		) {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known strategy", s)
}

// TickerSelection is one pick from the user. Name and Category are
// display metadata and never take part in the arithmetic.
type TickerSelection struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

// Bounds on the years a config may name. They keep compounding over the
// horizon within float64 range.
const (
	MinSimulationYear = 1900
	MaxSimulationYear = 2200
)

// SimulationConfig is the immutable input of a simulation.
//
// EndMonthOffset is the number of whole months already elapsed in EndYear.
// Zero means the horizon ends on January 1st of EndYear, which is what
// whole-year simulations want.
type SimulationConfig struct {
	StartYear           int               `json:"startYear"`
	EndYear             int               `json:"endYear"`
	EndMonthOffset      int               `json:"endMonthOffset"`
	Principal           decimal.Decimal   `json:"principal"`
	Strategy            Strategy          `json:"strategy"`
	MonthlyContribution decimal.Decimal   `json:"monthlyContribution"`
	Tickers             []TickerSelection `json:"tickers"`
}

// NewSimulationConfig builds a config and validates it, so an invalid
// config never leaves this function.
func NewSimulationConfig(
	startYear,
	endYear,
	endMonthOffset int,
	principal decimal.Decimal,
	strategy Strategy,
	monthlyContribution decimal.Decimal,
	tickers []TickerSelection,
) (*SimulationConfig, error) {
	t := make([]TickerSelection, len(tickers))
	copy(t, tickers)

	cfg := SimulationConfig{
		StartYear:           startYear,
		EndYear:             endYear,
		EndMonthOffset:      endMonthOffset,
		Principal:           principal,
		Strategy:            strategy,
		MonthlyContribution: monthlyContribution,
		Tickers:             t,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects malformed configs. It never corrects them.
func (c SimulationConfig) Validate() error {
	if len(c.Tickers) == 0 {
		return NewValidationError("tickers", "at least one ticker is required")
	}
	seen := map[string]bool{}
	for _, t := range c.Tickers {
		if t.Symbol == "" {
			return NewValidationError("tickers", "ticker symbol cannot be empty")
		}
		if t.Symbol != strings.ToUpper(strings.TrimSpace(t.Symbol)) {
			return NewValidationError("tickers", fmt.Sprintf("ticker symbol %q must be uppercase without spaces", t.Symbol))
		}
		if seen[t.Symbol] {
			return NewValidationError("tickers", fmt.Sprintf("ticker %s selected more than once", t.Symbol))
		}
		seen[t.Symbol] = true
	}

	if c.StartYear < MinSimulationYear || c.StartYear > MaxSimulationYear {
		return NewValidationError("startYear", fmt.Sprintf("must be between %d and %d", MinSimulationYear, MaxSimulationYear))
	}
	if c.EndYear < MinSimulationYear || c.EndYear > MaxSimulationYear {
		return NewValidationError("endYear", fmt.Sprintf("must be between %d and %d", MinSimulationYear, MaxSimulationYear))
	}
	if c.StartYear > c.EndYear {
		return NewValidationError("startYear", fmt.Sprintf("start year %d is after end year %d", c.StartYear, c.EndYear))
	}
	if c.EndMonthOffset < 0 || c.EndMonthOffset > 11 {
		return NewValidationError("endMonthOffset", "must be between 0 and 11")
	}

	switch c.Strategy {
	case Strategy_LumpSum:
		if !c.Principal.IsPositive() {
			return NewValidationError("principal", "must be greater than 0 for lump sum")
		}
	case Strategy_DollarCostAverage:
		if !c.MonthlyContribution.IsPositive() {
			return NewValidationError("monthlyContribution", "must be greater than 0 for dollar-cost averaging")
		}
	default:
		return NewValidationError("strategy", fmt.Sprintf("unknown strategy %q", c.Strategy))
	}

	return nil
}

// Months is the number of monthly contributions in the horizon.
func (c SimulationConfig) Months() int {
	m := (c.EndYear-c.StartYear)*12 + c.EndMonthOffset
	if m < 0 {
		return 0
	}
	return m
}

func (c SimulationConfig) YearsHeld() decimal.Decimal {
	return decimal.NewFromInt(int64(c.Months())).Div(decimal.NewFromInt(12))
}

func (c SimulationConfig) Symbols() []string {
	out := make([]string, 0, len(c.Tickers))
	for _, t := range c.Tickers {
		out = append(out, t.Symbol)
	}
	return out
}

// PriceQuote is the buy/sell price pair for a symbol over the horizon.
// A quote with Err set is unavailable, whatever the prices say.
type PriceQuote struct {
	Symbol    string          `json:"symbol"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	Err       error           `json:"-"`
}

func (q PriceQuote) Available() bool {
	return q.Err == nil
}

// Benchmark is one row of the benchmark table plus the savings rate
// used for the savings account comparison.
type Benchmark struct {
	Year              int             `json:"year"`
	IndexLevelAtStart decimal.Decimal `json:"indexLevelAtStart"`
	IndexLevelNow     decimal.Decimal `json:"indexLevelNow"`
	SavingsRate       decimal.Decimal `json:"savingsRate"`
}

// MarketReturn is the realized index return since the start of Year.
func (b Benchmark) MarketReturn() decimal.Decimal {
	if !b.IndexLevelAtStart.IsPositive() {
		return decimal.Zero
	}
	return b.IndexLevelNow.Sub(b.IndexLevelAtStart).Div(b.IndexLevelAtStart)
}

type PositionStatus string

const (
	PositionStatus_Ok               PositionStatus = "OK"
	PositionStatus_QuoteUnavailable PositionStatus = "QUOTE_UNAVAILABLE"
	PositionStatus_NoContributions  PositionStatus = "NO_CONTRIBUTIONS"
)

type PositionResult struct {
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name,omitempty"`
	Category     string          `json:"category,omitempty"`
	BuyPrice     decimal.Decimal `json:"buyPrice"`
	SellPrice    decimal.Decimal `json:"sellPrice"`
	Invested     decimal.Decimal `json:"invested"`
	Shares       decimal.Decimal `json:"shares"`
	FinalValue   decimal.Decimal `json:"finalValue"`
	Gain         decimal.Decimal `json:"gain"`
	GainPercent  decimal.Decimal `json:"gainPercent"`
	Status       PositionStatus  `json:"status"`
	StatusReason string          `json:"statusReason,omitempty"`
}

func (p PositionResult) Failed() bool {
	return p.Status != PositionStatus_Ok
}

type Comparisons struct {
	Mattress       decimal.Decimal `json:"mattress"`
	SavingsAccount decimal.Decimal `json:"savingsAccount"`
	MarketIndex    decimal.Decimal `json:"marketIndex"`
}

// PortfolioResult is a value object. Nothing mutates it after Simulate
// returns; Rounded hands back a copy.
type PortfolioResult struct {
	Strategy         Strategy         `json:"strategy"`
	StartYear        int              `json:"startYear"`
	EndYear          int              `json:"endYear"`
	MonthsHeld       int              `json:"monthsHeld"`
	YearsHeld        decimal.Decimal  `json:"yearsHeld"`
	Positions        []PositionResult `json:"positions"`
	TotalInvested    decimal.Decimal  `json:"totalInvested"`
	TotalValue       decimal.Decimal  `json:"totalValue"`
	TotalGain        decimal.Decimal  `json:"totalGain"`
	TotalGainPercent decimal.Decimal  `json:"totalGainPercent"`
	Comparisons      Comparisons      `json:"comparisons"`
}

func (r PortfolioResult) FailedSymbols() []string {
	out := []string{}
	for _, p := range r.Positions {
		if p.Status == PositionStatus_QuoteUnavailable {
			out = append(out, p.Symbol)
		}
	}
	return out
}

const (
	moneyPlaces   = 2
	sharePlaces   = 6
	percentPlaces = 4
)

// Rounded returns a copy fit for display: money in cents, shares to six
// places. Invested and final values are rounded as groups so each column
// still sums to its unrounded total rounded to cents. Gains are recomputed
// from the rounded amounts so that gain == finalValue - invested holds
// exactly in what gets rendered.
func (r PortfolioResult) Rounded() PortfolioResult {
	out := r
	out.YearsHeld = r.YearsHeld.Round(percentPlaces)
	out.Positions = make([]PositionResult, len(r.Positions))

	invested := make([]decimal.Decimal, len(r.Positions))
	finalValues := make([]decimal.Decimal, len(r.Positions))
	for i, p := range r.Positions {
		invested[i] = p.Invested
		finalValues[i] = p.FinalValue
	}
	invested = roundPreservingTotal(invested, moneyPlaces)
	finalValues = roundPreservingTotal(finalValues, moneyPlaces)

	totalInvested := decimal.Zero
	totalValue := decimal.Zero
	for i, p := range r.Positions {
		p.BuyPrice = p.BuyPrice.Round(percentPlaces)
		p.SellPrice = p.SellPrice.Round(percentPlaces)
		p.Invested = invested[i]
		p.FinalValue = finalValues[i]
		p.Shares = p.Shares.Round(sharePlaces)
		p.Gain = p.FinalValue.Sub(p.Invested)
		p.GainPercent = PercentOf(p.Gain, p.Invested).Round(percentPlaces)
		out.Positions[i] = p

		totalInvested = totalInvested.Add(p.Invested)
		totalValue = totalValue.Add(p.FinalValue)
	}

	out.TotalInvested = totalInvested
	out.TotalValue = totalValue
	out.TotalGain = totalValue.Sub(totalInvested)
	out.TotalGainPercent = PercentOf(out.TotalGain, totalInvested).Round(percentPlaces)
	out.Comparisons = Comparisons{
		Mattress:       totalInvested,
		SavingsAccount: r.Comparisons.SavingsAccount.Round(moneyPlaces),
		MarketIndex:    r.Comparisons.MarketIndex.Round(moneyPlaces),
	}

	return out
}

// roundPreservingTotal rounds every amount down to places, then hands the
// units still missing from the rounded total to the amounts with the
// largest remainders. Ties go to the earlier amount.
func roundPreservingTotal(amounts []decimal.Decimal, places int32) []decimal.Decimal {
	out := make([]decimal.Decimal, len(amounts))
	remainders := make([]decimal.Decimal, len(amounts))
	total := decimal.Zero
	floored := decimal.Zero
	for i, a := range amounts {
		out[i] = a.RoundFloor(places)
		remainders[i] = a.Sub(out[i])
		total = total.Add(a)
		floored = floored.Add(out[i])
	}

	unit := decimal.New(1, -places)
	missing := total.Round(places).Sub(floored).Div(unit).IntPart()

	order := make([]int, len(amounts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return remainders[order[i]].GreaterThan(remainders[order[j]])
	})
	for k := 0; k < int(missing) && k < len(order); k++ {
		out[order[k]] = out[order[k]].Add(unit)
	}

	return out
}

// PercentOf is gain / invested * 100, or 0 when nothing was invested.
func PercentOf(gain, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return gain.Div(invested).Mul(decimal.NewFromInt(100))
}
