package l2_service

import (
	"context"
	"fmt"
	"time"

	"portfoliosim/internal/calculator"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"
	l1_service "portfoliosim/internal/service/l1"
	"portfoliosim/internal/util"
)

type SimulationService interface {
	Run(ctx context.Context, cfg domain.SimulationConfig) (*domain.PortfolioResult, error)
	// DefaultEndMonthOffset is the offset used when a caller leaves it out:
	// the months already elapsed when endYear is the current year, else 0.
	DefaultEndMonthOffset(endYear int) int
}

type simulationServiceHandler struct {
	BenchmarkRepository   repository.BenchmarkRepository
	QuoteService          l1_service.QuoteService
	LatestPriceRepository repository.LatestPriceRepository

	now func() time.Time
}

// NewSimulationService wires the service. latestPriceRepository may be nil,
// in which case current-year horizons sell at the last daily close.
func NewSimulationService(
	benchmarkRepository repository.BenchmarkRepository,
	quoteService l1_service.QuoteService,
	latestPriceRepository repository.LatestPriceRepository,
) SimulationService {
	return simulationServiceHandler{
		BenchmarkRepository:   benchmarkRepository,
		QuoteService:          quoteService,
		LatestPriceRepository: latestPriceRepository,
		now:                   time.Now,
	}
}

// Run validates cfg, resolves its inputs and returns the rounded result.
// Validation failures and unknown benchmark years are returned before any
// price lookup happens.
func (h simulationServiceHandler) Run(ctx context.Context, cfg domain.SimulationConfig) (*domain.PortfolioResult, error) {
	log := logger.FromContext(ctx)
	profile, _ := domain.GetProfile(ctx)

	_, endSpan := profile.StartNewSpan("validate")
	if err := cfg.Validate(); err != nil {
		endSpan()
		return nil, err
	}
	benchmark, err := h.BenchmarkRepository.Get(cfg.StartYear)
	endSpan()
	if err != nil {
		return nil, err
	}

	quotes := h.QuoteService.ResolveQuotes(ctx, cfg.Symbols(), cfg.StartYear, cfg.EndYear)

	if h.LatestPriceRepository != nil && cfg.EndYear == h.now().UTC().Year() {
		_, endSpan = profile.StartNewSpan("latest price override")
		h.applyLatestPrices(ctx, quotes)
		endSpan()
	}

	_, endSpan = profile.StartNewSpan("simulate")
	result, err := calculator.Simulate(cfg, quotes, *benchmark)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to simulate portfolio: %w", err)
	}

	rounded := result.Rounded()
	if failed := rounded.FailedSymbols(); len(failed) > 0 {
		log.Infof("simulated with %d unavailable quotes: %v", len(failed), failed)
	}

	return &rounded, nil
}

// applyLatestPrices replaces the sell price of available quotes with the
// latest bid. A failed lookup leaves the historical close in place.
func (h simulationServiceHandler) applyLatestPrices(ctx context.Context, quotes map[string]domain.PriceQuote) {
	log := logger.FromContext(ctx)

	symbols := []string{}
	for symbol, q := range quotes {
		if q.Available() {
			symbols = append(symbols, symbol)
		}
	}
	if len(symbols) == 0 {
		return
	}

	latest, err := h.LatestPriceRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		log.Warnf("failed to get latest prices, using last close: %s", err.Error())
		return
	}
	for symbol, price := range latest {
		q, ok := quotes[symbol]
		if !ok || !q.Available() {
			continue
		}
		q.SellPrice = price.Price
		quotes[symbol] = q
	}
}

func (h simulationServiceHandler) DefaultEndMonthOffset(endYear int) int {
	now := h.now().UTC()
	if endYear != now.Year() {
		return 0
	}
	return util.ElapsedMonths(endYear, now)
}
