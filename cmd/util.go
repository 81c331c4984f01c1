package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"portfoliosim/api"
	integration_tests "portfoliosim/integration-tests"
	"portfoliosim/internal/config"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"
	l1_service "portfoliosim/internal/service/l1"
	l2_service "portfoliosim/internal/service/l2"
	"portfoliosim/internal/util"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	if err := handler.Db.Close(); err != nil {
		logger.New().Errorf("failed to close db: %v", err)
	}
}

// InitializeDependencies reads secrets for ALPHA_ENV and the simulator
// config named by PORTFOLIOSIM_CONFIG, then wires the API.
func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	cfg, err := config.Load(os.Getenv("PORTFOLIOSIM_CONFIG"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	decimal.MarshalJSONWithoutQuotes = true

	return NewApiHandler(*secrets, cfg)
}

func useFixtures() bool {
	return strings.EqualFold(os.Getenv("ALPHA_ENV"), "test")
}

// NewApiHandler wires every dependency. The database, Alpaca and ChatGPT
// are each optional and only enabled when their secrets are set.
func NewApiHandler(secrets util.Secrets, cfg *config.Config) (*api.ApiHandler, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	var dbConn *sql.DB
	if secrets.Db.Enabled() {
		dbConn, err = sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
	}

	priceRepository := repository.NewYahooPriceRepository()
	var latestPriceRepository repository.LatestPriceRepository
	if secrets.Alpaca.Enabled() && !cfg.DisableLatestPrice {
		latestPriceRepository = repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	}

	if useFixtures() {
		priceRepository, err = integration_tests.NewFixturePriceRepositoryForTests()
		if err != nil {
			return nil, err
		}
		if !cfg.DisableLatestPrice {
			latestPriceRepository = integration_tests.NewFixtureLatestPriceRepositoryForTests()
		}
	}

	var (
		priceQuoteRepository      repository.PriceQuoteRepository
		leaderboardRepository     repository.LeaderboardRepository
		latencyTrackingRepository repository.LatencyTrackingRepository
		apiRequestRepository      repository.ApiRequestRepository
	)
	if dbConn != nil {
		priceQuoteRepository = repository.NewPriceQuoteRepository(dbConn)
		leaderboardRepository = repository.NewLeaderboardRepository(dbConn)
		latencyTrackingRepository = repository.NewLatencyTrackingRepository(dbConn)
		apiRequestRepository = repository.NewApiRequestRepository(dbConn)
	}

	benchmarkRepository := repository.NewBenchmarkRepository(cfg)
	quoteService := l1_service.NewQuoteService(
		priceRepository,
		repository.NewQuoteCacheRepository(cfg.QuoteCacheTTL),
		priceQuoteRepository,
		l1_service.QuoteServiceConfig{
			BatchSize:  cfg.QuoteFetch.BatchSize,
			BatchDelay: cfg.QuoteFetch.BatchDelay,
		},
	)
	simulationService := l2_service.NewSimulationService(
		benchmarkRepository,
		quoteService,
		latestPriceRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		SimulationService:         simulationService,
		BenchmarkRepository:       benchmarkRepository,
		StockStatsRepository:      repository.NewStockStatsRepository(),
		LeaderboardRepository:     leaderboardRepository,
		GptRepository:             gptRepository,
		LatencyTrackingRepository: latencyTrackingRepository,
		ApiRequestRepository:      apiRequestRepository,
		JwtDecodeToken:            secrets.Jwt,
	}

	return apiHandler, nil
}
