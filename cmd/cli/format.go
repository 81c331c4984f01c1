package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"portfoliosim/internal/calculator"
	"portfoliosim/internal/domain"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func formatUSD(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

func formatSignedUSD(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + formatUSD(d)
	}
	return formatUSD(d)
}

func formatPercent(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}

func printResult(cmd *cobra.Command, result domain.PortfolioResult, insights calculator.Insights) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s from %d to %d (%s years)\n\n",
		result.Strategy, result.StartYear, result.EndYear, result.YearsHeld.StringFixed(2))

	writePositions(out, result)

	fmt.Fprintf(out, "\ninvested      %s\n", formatUSD(result.TotalInvested))
	fmt.Fprintf(out, "final value   %s\n", formatUSD(result.TotalValue))
	fmt.Fprintf(out, "gain          %s (%s)\n", formatSignedUSD(result.TotalGain), formatPercent(result.TotalGainPercent))
	fmt.Fprintf(out, "annualized    %s\n", formatPercent(decimal.NewFromFloat(insights.AnnualizedReturn*100)))

	fmt.Fprintf(out, "\nsame money elsewhere\n")
	fmt.Fprintf(out, "  mattress         %s\n", formatUSD(result.Comparisons.Mattress))
	fmt.Fprintf(out, "  savings account  %s\n", formatUSD(result.Comparisons.SavingsAccount))
	fmt.Fprintf(out, "  S&P 500          %s\n", formatUSD(result.Comparisons.MarketIndex))

	if spread := insights.Spread; spread != nil && len(result.Positions) > 1 {
		fmt.Fprintf(out, "\nbest %s %.2f%%, worst %s %.2f%%, median %.2f%%\n",
			spread.BestSymbol, spread.BestGainPercent,
			spread.WorstSymbol, spread.WorstGainPercent,
			spread.MedianGainPercent)
	}

	if len(insights.FunPurchases) > 0 {
		label := "your gain buys"
		if !result.TotalGain.IsPositive() {
			label = "what is left buys"
		}
		fmt.Fprintf(out, "\n%s\n", label)
		for _, p := range insights.FunPurchases {
			fmt.Fprintf(out, "  %d %s\n", p.Quantity, p.Name)
		}
	}

	if failed := result.FailedSymbols(); len(failed) > 0 {
		fmt.Fprintf(out, "\ncould not price: %v\n", failed)
	}
}

func writePositions(out io.Writer, result domain.PortfolioResult) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "symbol\tbuy\tsell\tinvested\tvalue\tgain\tstatus\n")
	for _, p := range result.Positions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Symbol,
			p.BuyPrice.StringFixed(2),
			p.SellPrice.StringFixed(2),
			formatUSD(p.Invested),
			formatUSD(p.FinalValue),
			formatPercent(p.GainPercent),
			p.Status,
		)
	}
	w.Flush()
}

func printStats(cmd *cobra.Command, stats domain.StockStats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s (%s)\n", stats.Symbol, stats.ShortName, stats.Currency)

	optional := func(label string, v *float64) {
		if v == nil {
			fmt.Fprintf(out, "  %-16s n/a\n", label)
			return
		}
		fmt.Fprintf(out, "  %-16s %.2f\n", label, *v)
	}
	optional("trailing eps", stats.TrailingEps)
	optional("forward eps", stats.ForwardEps)
	optional("trailing p/e", stats.TrailingPE)
	optional("forward p/e", stats.ForwardPE)
	optional("dividend yield", stats.DividendYield)
	if stats.MarketCap != nil {
		fmt.Fprintf(out, "  %-16s %s\n", "market cap", money.New(*stats.MarketCap*100, money.USD).Display())
	} else {
		fmt.Fprintf(out, "  %-16s n/a\n", "market cap")
	}
}
