package l1_service

import (
	"context"
	"errors"
	"sync"
	"time"

	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"
)

// QuoteService resolves buy/sell quotes for a set of symbols. It never
// fails as a whole: every requested symbol comes back, either priced or
// carrying the error that kept it from being priced.
type QuoteService interface {
	ResolveQuotes(ctx context.Context, symbols []string, startYear, endYear int) map[string]domain.PriceQuote
}

type QuoteServiceConfig struct {
	BatchSize  int
	BatchDelay time.Duration
}

type quoteServiceHandler struct {
	PriceRepository      repository.PriceRepository
	QuoteCache           repository.QuoteCacheRepository
	PriceQuoteRepository repository.PriceQuoteRepository

	batchSize  int
	batchDelay time.Duration
	now        func() time.Time
}

// NewQuoteService wires the resolver. priceQuoteRepository may be nil when
// no database is configured.
func NewQuoteService(
	priceRepository repository.PriceRepository,
	quoteCache repository.QuoteCacheRepository,
	priceQuoteRepository repository.PriceQuoteRepository,
	cfg QuoteServiceConfig,
) QuoteService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.BatchDelay < 0 {
		cfg.BatchDelay = 0
	}
	return &quoteServiceHandler{
		PriceRepository:      priceRepository,
		QuoteCache:           quoteCache,
		PriceQuoteRepository: priceQuoteRepository,
		batchSize:            cfg.BatchSize,
		batchDelay:           cfg.BatchDelay,
		now:                  time.Now,
	}
}

func (h quoteServiceHandler) ResolveQuotes(ctx context.Context, symbols []string, startYear, endYear int) map[string]domain.PriceQuote {
	log := logger.FromContext(ctx)
	profile, _ := domain.GetProfile(ctx)

	out := map[string]domain.PriceQuote{}
	// historical quotes never change, so only those go to the durable tier
	durable := h.PriceQuoteRepository != nil && endYear < h.now().UTC().Year()

	_, endSpan := profile.StartNewSpan("quote cache lookup")
	misses := []string{}
	for _, symbol := range dedupe(symbols) {
		key := domain.QuoteKey{Symbol: symbol, StartYear: startYear, EndYear: endYear}
		if h.QuoteCache != nil {
			if q, ok := h.QuoteCache.Get(key); ok {
				out[symbol] = *q
				continue
			}
		}
		if durable {
			q, err := h.PriceQuoteRepository.Get(key)
			if err != nil {
				log.Warnf("failed to read stored quote for %s: %s", symbol, err.Error())
			} else if q != nil {
				out[symbol] = *q
				h.cache(key, *q)
				continue
			}
		}
		misses = append(misses, symbol)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("quote fetch")
	defer endSpan()

	mu := sync.Mutex{}
	for i := 0; i < len(misses); i += h.batchSize {
		batch := misses[i:min(i+h.batchSize, len(misses))]

		if i > 0 {
			if err := sleep(ctx, h.batchDelay); err != nil {
				h.failRemaining(out, misses[i:], err)
				break
			}
		}
		if err := ctx.Err(); err != nil {
			h.failRemaining(out, misses[i:], err)
			break
		}

		var wg sync.WaitGroup
		for _, symbol := range batch {
			wg.Add(1)
			go func(symbol string) {
				defer wg.Done()
				quote := h.fetch(ctx, symbol, startYear, endYear, durable)
				mu.Lock()
				out[symbol] = quote
				mu.Unlock()
			}(symbol)
		}
		wg.Wait()
	}

	return out
}

func (h quoteServiceHandler) fetch(ctx context.Context, symbol string, startYear, endYear int, durable bool) domain.PriceQuote {
	log := logger.FromContext(ctx)
	key := domain.QuoteKey{Symbol: symbol, StartYear: startYear, EndYear: endYear}

	q, err := h.PriceRepository.GetQuote(ctx, symbol, startYear, endYear)
	if err == nil && q == nil {
		err = errors.New("price source returned no quote")
	}
	if err != nil {
		log.Warnf("failed to resolve quote for %s: %s", symbol, err.Error())
		return unavailable(symbol, err)
	}

	q.Symbol = symbol
	h.cache(key, *q)
	if durable {
		if err := h.PriceQuoteRepository.Upsert(key, *q); err != nil {
			log.Warnf("failed to store quote for %s: %s", symbol, err.Error())
		}
	}
	return *q
}

func (h quoteServiceHandler) cache(key domain.QuoteKey, q domain.PriceQuote) {
	if h.QuoteCache != nil {
		h.QuoteCache.Add(key, q)
	}
}

func (h quoteServiceHandler) failRemaining(out map[string]domain.PriceQuote, symbols []string, err error) {
	for _, symbol := range symbols {
		out[symbol] = unavailable(symbol, err)
	}
}

func unavailable(symbol string, err error) domain.PriceQuote {
	var quoteErr *domain.QuoteUnavailableError
	if !errors.As(err, &quoteErr) {
		err = &domain.QuoteUnavailableError{
			Symbol: symbol,
			Reason: "price lookup failed",
			Err:    err,
		}
	}
	return domain.PriceQuote{
		Symbol: symbol,
		Err:    err,
	}
}

func dedupe(symbols []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range symbols {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
