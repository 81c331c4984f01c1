package l1_service

import (
	"context"
	"errors"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/repository"
	mock_repository "portfoliosim/internal/repository/mocks"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuote(symbol string, buy, sell float64) *domain.PriceQuote {
	return &domain.PriceQuote{
		Symbol:    symbol,
		BuyPrice:  decimal.NewFromFloat(buy),
		SellPrice: decimal.NewFromFloat(sell),
	}
}

func newTestHandler(
	priceRepository repository.PriceRepository,
	priceQuoteRepository repository.PriceQuoteRepository,
	batchSize int,
) *quoteServiceHandler {
	return &quoteServiceHandler{
		PriceRepository:      priceRepository,
		QuoteCache:           repository.NewQuoteCacheRepository(time.Hour),
		PriceQuoteRepository: priceQuoteRepository,
		batchSize:            batchSize,
		now: func() time.Time {
			return time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
		},
	}
}

func Test_quoteServiceHandler_ResolveQuotes(t *testing.T) {
	ctx := context.Background()

	t.Run("dedupes and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)
		handler := newTestHandler(priceRepository, nil, 5)

		priceRepository.EXPECT().
			GetQuote(gomock.Any(), "AAPL", 2020, 2024).
			Return(newQuote("AAPL", 75, 250), nil).
			Times(1)
		priceRepository.EXPECT().
			GetQuote(gomock.Any(), "MSFT", 2020, 2024).
			Return(newQuote("MSFT", 160, 420), nil).
			Times(1)

		quotes := handler.ResolveQuotes(ctx, []string{"AAPL", "MSFT", "AAPL"}, 2020, 2024)
		require.Len(t, quotes, 2)
		require.Equal(t, "250", quotes["AAPL"].SellPrice.String())
		require.True(t, quotes["MSFT"].Available())

		// second call is served from the cache
		quotes = handler.ResolveQuotes(ctx, []string{"MSFT", "AAPL"}, 2020, 2024)
		require.Len(t, quotes, 2)
		require.Equal(t, "420", quotes["MSFT"].SellPrice.String())
	})

	t.Run("one failure does not block the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)
		handler := newTestHandler(priceRepository, nil, 5)

		sourceErr := errors.New("404 not found")
		priceRepository.EXPECT().
			GetQuote(gomock.Any(), "AAPL", 2020, 2024).
			Return(newQuote("AAPL", 75, 250), nil)
		priceRepository.EXPECT().
			GetQuote(gomock.Any(), "FAKE", 2020, 2024).
			Return(nil, sourceErr)
		priceRepository.EXPECT().
			GetQuote(gomock.Any(), "NIL", 2020, 2024).
			Return(nil, nil)

		quotes := handler.ResolveQuotes(ctx, []string{"AAPL", "FAKE", "NIL"}, 2020, 2024)
		require.Len(t, quotes, 3)
		require.True(t, quotes["AAPL"].Available())
		require.False(t, quotes["FAKE"].Available())
		require.ErrorIs(t, quotes["FAKE"].Err, sourceErr)
		require.False(t, quotes["NIL"].Available())

		var quoteErr *domain.QuoteUnavailableError
		require.True(t, errors.As(quotes["FAKE"].Err, &quoteErr))
		require.Equal(t, "FAKE", quoteErr.Symbol)
	})

	t.Run("failed quotes are retried next time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)
		handler := newTestHandler(priceRepository, nil, 5)

		gomock.InOrder(
			priceRepository.EXPECT().
				GetQuote(gomock.Any(), "AAPL", 2020, 2024).
				Return(nil, errors.New("429")),
			priceRepository.EXPECT().
				GetQuote(gomock.Any(), "AAPL", 2020, 2024).
				Return(newQuote("AAPL", 75, 250), nil),
		)

		require.False(t, handler.ResolveQuotes(ctx, []string{"AAPL"}, 2020, 2024)["AAPL"].Available())
		require.True(t, handler.ResolveQuotes(ctx, []string{"AAPL"}, 2020, 2024)["AAPL"].Available())
	})

	t.Run("batches bound concurrency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)
		handler := newTestHandler(priceRepository, nil, 2)

		var inFlight, maxInFlight int32
		priceRepository.EXPECT().
			GetQuote(gomock.Any(), gomock.Any(), 2020, 2024).
			DoAndReturn(func(ctx context.Context, symbol string, startYear, endYear int) (*domain.PriceQuote, error) {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					m := atomic.LoadInt32(&maxInFlight)
					if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return newQuote(symbol, 1, 2), nil
			}).
			Times(5)

		quotes := handler.ResolveQuotes(ctx, []string{"A", "B", "C", "D", "E"}, 2020, 2024)
		require.Len(t, quotes, 5)
		for _, q := range quotes {
			require.True(t, q.Available())
		}
		require.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(2))
	})

	t.Run("cancellation stops new batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)
		handler := newTestHandler(priceRepository, nil, 2)
		handler.batchDelay = time.Second

		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		priceRepository.EXPECT().
			GetQuote(gomock.Any(), gomock.Any(), 2020, 2024).
			DoAndReturn(func(ctx context.Context, symbol string, startYear, endYear int) (*domain.PriceQuote, error) {
				cancel()
				return newQuote(symbol, 1, 2), nil
			}).
			Times(2)

		quotes := handler.ResolveQuotes(cancelCtx, []string{"A", "B", "C", "D", "E"}, 2020, 2024)
		require.Len(t, quotes, 5)
		require.True(t, quotes["A"].Available())
		require.True(t, quotes["B"].Available())
		for _, s := range []string{"C", "D", "E"} {
			require.ErrorIs(t, quotes[s].Err, context.Canceled)
		}
	})

	t.Run("durable tier for historical horizons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)
		priceQuoteRepository := mock_repository.NewMockPriceQuoteRepository(ctrl)
		handler := newTestHandler(priceRepository, priceQuoteRepository, 5)

		stored := domain.QuoteKey{Symbol: "AAPL", StartYear: 2015, EndYear: 2020}
		fresh := domain.QuoteKey{Symbol: "MSFT", StartYear: 2015, EndYear: 2020}
		priceQuoteRepository.EXPECT().Get(stored).Return(newQuote("AAPL", 27, 132), nil)
		priceQuoteRepository.EXPECT().Get(fresh).Return(nil, nil)
		priceRepository.EXPECT().
			GetQuote(gomock.Any(), "MSFT", 2015, 2020).
			Return(newQuote("MSFT", 46, 222), nil)
		priceQuoteRepository.EXPECT().Upsert(fresh, *newQuote("MSFT", 46, 222)).Return(nil)

		quotes := handler.ResolveQuotes(ctx, []string{"AAPL", "MSFT"}, 2015, 2020)
		require.Equal(t, "132", quotes["AAPL"].SellPrice.String())
		require.Equal(t, "222", quotes["MSFT"].SellPrice.String())
	})

	t.Run("current year skips the durable tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)
		priceQuoteRepository := mock_repository.NewMockPriceQuoteRepository(ctrl)
		handler := newTestHandler(priceRepository, priceQuoteRepository, 5)

		priceRepository.EXPECT().
			GetQuote(gomock.Any(), "AAPL", 2020, 2026).
			Return(newQuote("AAPL", 75, 250), nil)

		quotes := handler.ResolveQuotes(ctx, []string{"AAPL"}, 2020, 2026)
		require.True(t, quotes["AAPL"].Available())
	})
}

func TestNewQuoteService(t *testing.T) {
	handler := NewQuoteService(nil, nil, nil, QuoteServiceConfig{}).(*quoteServiceHandler)
	require.Equal(t, 5, handler.batchSize)
	require.Equal(t, time.Duration(0), handler.batchDelay)
}
