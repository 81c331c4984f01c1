package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"portfoliosim/internal/calculator"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type tickerRequest struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type simulateRequest struct {
	StartYear int `json:"startYear"`
	EndYear   int `json:"endYear"`
	// nil means the months already elapsed when endYear is the current year
	EndMonthOffset      *int            `json:"endMonthOffset"`
	Principal           decimal.Decimal `json:"principal"`
	Strategy            string          `json:"strategy"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	Tickers             []tickerRequest `json:"tickers"`
}

type simulateResponse struct {
	Result        domain.PortfolioResult `json:"result"`
	FailedSymbols []string               `json:"failedSymbols"`
	Insights      *calculator.Insights   `json:"insights"`
}

func (m ApiHandler) simulate(c *gin.Context) {
	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	profile, endProfile := domain.NewProfile()
	ctx := domain.NewCtxWithProfile(c.Request.Context(), profile)

	result, err := m.runSimulation(ctx, requestBody)
	if err != nil {
		returnSimulationError(err, c)
		return
	}

	insights, err := calculator.ComputeInsights(*result)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute insights: %w", err), c)
		return
	}

	endProfile()
	m.trackLatency(c, *profile)

	c.JSON(200, simulateResponse{
		Result:        *result,
		FailedSymbols: result.FailedSymbols(),
		Insights:      insights,
	})
}

func (m ApiHandler) runSimulation(ctx context.Context, requestBody simulateRequest) (*domain.PortfolioResult, error) {
	cfg, err := m.toSimulationConfig(requestBody)
	if err != nil {
		return nil, err
	}
	return m.SimulationService.Run(ctx, *cfg)
}

func (m ApiHandler) toSimulationConfig(requestBody simulateRequest) (*domain.SimulationConfig, error) {
	strategy, err := domain.NewStrategy(requestBody.Strategy)
	if err != nil {
		return nil, domain.NewValidationError("strategy", err.Error())
	}

	endMonthOffset := m.SimulationService.DefaultEndMonthOffset(requestBody.EndYear)
	if requestBody.EndMonthOffset != nil {
		endMonthOffset = *requestBody.EndMonthOffset
	}

	tickers := []domain.TickerSelection{}
	for _, t := range requestBody.Tickers {
		symbol := strings.ToUpper(strings.TrimSpace(t.Symbol))
		// symbols outside the catalog pass through with only the symbol set
		selection, _ := domain.LookupTicker(symbol)
		if t.Name != "" {
			selection.Name = t.Name
		}
		if t.Category != "" {
			selection.Category = t.Category
		}
		tickers = append(tickers, selection)
	}

	return domain.NewSimulationConfig(
		requestBody.StartYear,
		requestBody.EndYear,
		endMonthOffset,
		requestBody.Principal,
		*strategy,
		requestBody.MonthlyContribution,
		tickers,
	)
}

func (m ApiHandler) trackLatency(c *gin.Context, profile domain.Profile) {
	if m.LatencyTrackingRepository == nil {
		return
	}
	if err := m.LatencyTrackingRepository.Add(profile, requestIDFromContext(c)); err != nil {
		logger.FromContext(c.Request.Context()).Warnf("failed to track latency: %s", err.Error())
	}
}
