package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"portfoliosim/api"
	deps "portfoliosim/cmd"
	"portfoliosim/internal/calculator"
	"portfoliosim/internal/config"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "portfoliosim",
	Short:         "Replay a stock portfolio against history",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "simulator config file (yaml)")
	rootCmd.PersistentFlags().String("secrets", "", "secrets file enabling the database, alpaca and chatgpt")

	simulateCmd.Flags().Int("start", 0, "first year of the horizon")
	simulateCmd.Flags().Int("end", 0, "last year of the horizon")
	simulateCmd.Flags().Int("end-month-offset", -1, "months already elapsed in the end year, -1 for the default")
	simulateCmd.Flags().String("strategy", "lump_sum", "lump_sum or dca")
	simulateCmd.Flags().Float64("principal", 10000, "lump sum principal")
	simulateCmd.Flags().Float64("monthly", 500, "monthly contribution for dca")
	simulateCmd.Flags().StringSlice("tickers", nil, "comma separated symbols")
	simulateCmd.Flags().String("category", "", "simulate every ticker in a catalog category")
	simulateCmd.Flags().String("csv", "", "write positions to this csv file")
	simulateCmd.Flags().Bool("json", false, "print the result as json")
	simulateCmd.Flags().Bool("explain", false, "ask chatgpt to explain the result")

	rootCmd.AddCommand(simulateCmd, benchmarkCmd, statsCmd, categoriesCmd)
}

// newHandler wires the same dependencies as the API. Without a secrets
// file only the public data sources are used.
func newHandler(cmd *cobra.Command) (*api.ApiHandler, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	secrets := util.Secrets{}
	if secretsPath, _ := cmd.Flags().GetString("secrets"); secretsPath != "" {
		s, err := util.LoadSecretsFile(secretsPath)
		if err != nil {
			return nil, err
		}
		secrets = *s
	}

	return deps.NewApiHandler(secrets, cfg)
}

func simulationConfigFromFlags(cmd *cobra.Command, handler *api.ApiHandler) (*domain.SimulationConfig, error) {
	flags := cmd.Flags()
	start, _ := flags.GetInt("start")
	end, _ := flags.GetInt("end")
	offset, _ := flags.GetInt("end-month-offset")
	strategyStr, _ := flags.GetString("strategy")
	principal, _ := flags.GetFloat64("principal")
	monthly, _ := flags.GetFloat64("monthly")
	symbols, _ := flags.GetStringSlice("tickers")
	categoryID, _ := flags.GetString("category")

	strategy, err := domain.NewStrategy(strategyStr)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = handler.SimulationService.DefaultEndMonthOffset(end)
	}

	tickers := []domain.TickerSelection{}
	if categoryID != "" {
		category, ok := domain.FindCategory(categoryID)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", categoryID)
		}
		tickers = append(tickers, category.Tickers...)
	}
	for _, s := range symbols {
		t, _ := domain.LookupTicker(strings.ToUpper(strings.TrimSpace(s)))
		tickers = append(tickers, t)
	}

	return domain.NewSimulationConfig(
		start,
		end,
		offset,
		decimal.NewFromFloat(principal),
		*strategy,
		decimal.NewFromFloat(monthly),
		tickers,
	)
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a portfolio",
	Example: "  portfoliosim simulate --start 2015 --end 2024 --tickers AAPL,MSFT,XOM\n" +
		"  portfoliosim simulate --start 2020 --end 2024 --strategy dca --monthly 250 --category tech",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer deps.CloseDependencies(handler)

		cfg, err := simulationConfigFromFlags(cmd, handler)
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := handler.SimulationService.Run(ctx, *cfg)
		if err != nil {
			return err
		}

		if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
			if err := writePositionsCsv(csvPath, *result); err != nil {
				return err
			}
		}

		if asJson, _ := cmd.Flags().GetBool("json"); asJson {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		insights, err := calculator.ComputeInsights(*result)
		if err != nil {
			return err
		}
		printResult(cmd, *result, *insights)

		if explain, _ := cmd.Flags().GetBool("explain"); explain {
			text, err := handler.GptRepository.ExplainSimulation(ctx, *result)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", text)
		}
		return nil
	},
}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Print the S&P 500 levels and savings rate used for comparisons",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer deps.CloseDependencies(handler)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "year\tstart\tnow\treturn\t\n")
		for _, b := range handler.BenchmarkRepository.List() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
				b.Year,
				b.IndexLevelAtStart.StringFixed(2),
				b.IndexLevelNow.StringFixed(2),
				formatPercent(b.MarketReturn().Mul(decimal.NewFromInt(100))),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nsavings rate: %s\n", formatPercent(handler.BenchmarkRepository.SavingsRate().Mul(decimal.NewFromInt(100))))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats SYMBOL",
	Short: "Print fundamentals for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newHandler(cmd)
		if err != nil {
			return err
		}
		defer deps.CloseDependencies(handler)

		stats, err := handler.StockStatsRepository.GetStats(context.Background(), args[0])
		if err != nil {
			return err
		}
		printStats(cmd, *stats)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the ticker catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range domain.Categories {
			symbols := []string{}
			for _, t := range c.Tickers {
				symbols = append(symbols, t.Symbol)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", c.ID, strings.Join(symbols, ","))
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.New().Error(err)
		os.Exit(1)
	}
}

type positionCsvRow struct {
	Symbol      string `csv:"symbol"`
	Name        string `csv:"name"`
	Category    string `csv:"category"`
	Status      string `csv:"status"`
	BuyPrice    string `csv:"buy_price"`
	SellPrice   string `csv:"sell_price"`
	Invested    string `csv:"invested"`
	Shares      string `csv:"shares"`
	FinalValue  string `csv:"final_value"`
	Gain        string `csv:"gain"`
	GainPercent string `csv:"gain_percent"`
}

func positionCsvRows(result domain.PortfolioResult) []*positionCsvRow {
	rows := []*positionCsvRow{}
	for _, p := range result.Positions {
		rows = append(rows, &positionCsvRow{
			Symbol:      p.Symbol,
			Name:        p.Name,
			Category:    p.Category,
			Status:      string(p.Status),
			BuyPrice:    p.BuyPrice.String(),
			SellPrice:   p.SellPrice.String(),
			Invested:    p.Invested.StringFixed(2),
			Shares:      p.Shares.String(),
			FinalValue:  p.FinalValue.StringFixed(2),
			Gain:        p.Gain.StringFixed(2),
			GainPercent: p.GainPercent.StringFixed(2),
		})
	}
	return rows
}

func writePositionsCsv(path string, result domain.PortfolioResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(positionCsvRows(result), f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
