package repository

import (
	"fmt"
	"sort"

	"portfoliosim/internal/config"
	"portfoliosim/internal/domain"

	"github.com/shopspring/decimal"
)

type BenchmarkRepository interface {
	Get(year int) (*domain.Benchmark, error)
	List() []domain.Benchmark
	SavingsRate() decimal.Decimal
}

type benchmarkLevel struct {
	start, now float64
}

// S&P 500 at the first trading day of each year, and the level the
// table treats as today.
var sp500Levels = map[int]benchmarkLevel{
	2000: {1469.25, 5950.25},
	2001: {1320.28, 5950.25},
	2002: {1148.08, 5950.25},
	2003: {879.82, 5950.25},
	2004: {1111.92, 5950.25},
	2005: {1181.27, 5950.25},
	2006: {1248.29, 5950.25},
	2007: {1418.30, 5950.25},
	2008: {1468.36, 5950.25},
	2009: {903.25, 5950.25},
	2010: {1115.10, 5950.25},
	2011: {1257.62, 5950.25},
	2012: {1257.60, 5950.25},
	2013: {1426.19, 5950.25},
	2014: {1848.36, 5950.25},
	2015: {2058.90, 5950.25},
	2016: {2043.94, 5950.25},
	2017: {2238.83, 5950.25},
	2018: {2673.61, 5950.25},
	2019: {2506.85, 5950.25},
	2020: {3230.78, 5950.25},
	2021: {3756.07, 5950.25},
	2022: {4766.18, 5950.25},
	2023: {3824.14, 5950.25},
	2024: {4769.83, 5950.25},
	2025: {5881.63, 5950.25},
	2026: {5950.25, 5950.25},
}

type benchmarkRepositoryHandler struct {
	table       map[int]domain.Benchmark
	savingsRate decimal.Decimal
}

// NewBenchmarkRepository builds the table from the built-in levels with
// cfg's overrides and savings rate applied on top.
func NewBenchmarkRepository(cfg *config.Config) BenchmarkRepository {
	if cfg == nil {
		cfg = config.Default()
	}
	savingsRate := decimal.NewFromFloat(cfg.SavingsRate)

	table := map[int]domain.Benchmark{}
	add := func(year int, start, now float64) {
		table[year] = domain.Benchmark{
			Year:              year,
			IndexLevelAtStart: decimal.NewFromFloat(start),
			IndexLevelNow:     decimal.NewFromFloat(now),
			SavingsRate:       savingsRate,
		}
	}
	for year, level := range sp500Levels {
		add(year, level.start, level.now)
	}
	for year, level := range cfg.Benchmarks {
		add(year, level.Start, level.Now)
	}

	return benchmarkRepositoryHandler{
		table:       table,
		savingsRate: savingsRate,
	}
}

func (h benchmarkRepositoryHandler) Get(year int) (*domain.Benchmark, error) {
	b, ok := h.table[year]
	if !ok {
		return nil, fmt.Errorf("%w %d", domain.ErrUnknownBenchmarkYear, year)
	}
	return &b, nil
}

func (h benchmarkRepositoryHandler) List() []domain.Benchmark {
	out := make([]domain.Benchmark, 0, len(h.table))
	for _, b := range h.table {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

func (h benchmarkRepositoryHandler) SavingsRate() decimal.Decimal {
	return h.savingsRate
}
