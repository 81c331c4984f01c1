package integration_tests_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfoliosim/cmd"
	"portfoliosim/internal/calculator"
	"portfoliosim/internal/config"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/util"

	"github.com/stretchr/testify/require"
)

type simulateResponse struct {
	Result        domain.PortfolioResult `json:"result"`
	FailedSymbols []string               `json:"failedSymbols"`
	Insights      calculator.Insights    `json:"insights"`
}

func startServer(t *testing.T) *httptest.Server {
	t.Setenv("ALPHA_ENV", "test")

	cfg := config.Default()
	cfg.QuoteFetch.BatchDelay = 0
	handler, err := cmd.NewApiHandler(util.Secrets{}, cfg)
	require.NoError(t, err)

	server := httptest.NewServer(handler.InitializeRouterEngine())
	t.Cleanup(server.Close)
	return server
}

func hitEndpoint(server *httptest.Server, route string, method string, payload interface{}, target interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequest(method, server.URL+"/"+route, body)
	if err != nil {
		return 0, err
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("failed with response body: %s", string(responseBody))
	}

	return resp.StatusCode, json.Unmarshal(responseBody, target)
}

func Test_simulateFlow(t *testing.T) {
	server := startServer(t)

	t.Run("historical lump sum with an unknown ticker", func(t *testing.T) {
		request := map[string]any{
			"startYear": 2020,
			"endYear":   2024,
			"principal": 30000,
			"strategy":  "LUMP_SUM",
			"tickers": []map[string]string{
				{"symbol": "AAPL"},
				{"symbol": "msft"},
				{"symbol": "XOM"},
				{"symbol": "FAKE"},
			},
		}
		response := simulateResponse{}
		code, err := hitEndpoint(server, "simulate", http.MethodPost, request, &response)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, code)

		result := response.Result
		require.Equal(t, 48, result.MonthsHeld)
		require.Len(t, result.Positions, 4)
		require.Equal(t, "Apple Inc.", result.Positions[0].Name)
		require.Equal(t, "MSFT", result.Positions[1].Symbol)
		require.Equal(t, []string{"FAKE"}, response.FailedSymbols)

		require.InDelta(t, 25359.84, result.Positions[0].FinalValue.InexactFloat64(), 0.011)
		require.InDelta(t, 19909.62, result.Positions[1].FinalValue.InexactFloat64(), 0.011)
		require.InDelta(t, 11485.98, result.Positions[2].FinalValue.InexactFloat64(), 0.011)
		require.True(t, result.Positions[3].FinalValue.IsZero())

		require.Equal(t, "30000", result.TotalInvested.String())
		require.InDelta(t, 56755.44, result.TotalValue.InexactFloat64(), 0.03)
		require.True(t, result.TotalGain.Equal(result.TotalValue.Sub(result.TotalInvested)))
		require.Equal(t, "30000", result.Comparisons.Mattress.String())

		require.Equal(t, "AAPL", response.Insights.Spread.BestSymbol)
		require.Equal(t, "FAKE", response.Insights.Spread.WorstSymbol)
		require.Equal(t, 1, response.Insights.Spread.UnavailableSymbols)
	})

	t.Run("current year sells at the latest price", func(t *testing.T) {
		request := map[string]any{
			"startYear": 2020,
			"endYear":   time.Now().UTC().Year(),
			"principal": 10000,
			"strategy":  "lump",
			"tickers":   []map[string]string{{"symbol": "AAPL"}},
		}
		response := simulateResponse{}
		_, err := hitEndpoint(server, "simulate", http.MethodPost, request, &response)
		require.NoError(t, err)

		require.Equal(t, "247.1", response.Result.Positions[0].SellPrice.String())
		require.InDelta(t, 33364.84, response.Result.TotalValue.InexactFloat64(), 0.011)
	})

	t.Run("dollar cost averaging", func(t *testing.T) {
		request := map[string]any{
			"startYear":           2020,
			"endYear":             2024,
			"strategy":            "DCA",
			"monthlyContribution": 300,
			"tickers":             []map[string]string{{"symbol": "AAPL"}, {"symbol": "XOM"}},
		}
		response := simulateResponse{}
		_, err := hitEndpoint(server, "simulate", http.MethodPost, request, &response)
		require.NoError(t, err)

		result := response.Result
		require.Equal(t, "14400", result.TotalInvested.String())
		for _, p := range result.Positions {
			require.Equal(t, "7200", p.Invested.String())
			require.True(t, p.FinalValue.IsPositive())
		}
		require.True(t, result.Comparisons.SavingsAccount.GreaterThan(result.TotalInvested))
	})

	t.Run("invalid request", func(t *testing.T) {
		request := map[string]any{
			"startYear": 2024,
			"endYear":   2020,
			"principal": 10000,
			"strategy":  "LUMP_SUM",
			"tickers":   []map[string]string{{"symbol": "AAPL"}},
		}
		code, err := hitEndpoint(server, "simulate", http.MethodPost, request, &simulateResponse{})
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("leaderboard needs a database", func(t *testing.T) {
		code, err := hitEndpoint(server, "leaderboard", http.MethodGet, nil, &[]any{})
		require.Error(t, err)
		require.Equal(t, http.StatusServiceUnavailable, code)
	})

	t.Run("catalog", func(t *testing.T) {
		categories := []domain.Category{}
		_, err := hitEndpoint(server, "categories", http.MethodGet, nil, &categories)
		require.NoError(t, err)
		require.Len(t, categories, 6)
	})
}
