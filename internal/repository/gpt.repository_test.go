package repository

import (
	"context"
	"errors"
	"portfoliosim/internal/domain"
	"strings"
	"testing"

	"github.com/ayush6624/go-chatgpt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sampleResult() domain.PortfolioResult {
	return domain.PortfolioResult{
		Strategy:   domain.Strategy_LumpSum,
		StartYear:  2020,
		EndYear:    2024,
		MonthsHeld: 48,
		Positions: []domain.PositionResult{
			{Symbol: "AAPL", Invested: decimal.NewFromInt(5000), FinalValue: decimal.NewFromInt(10000), Status: domain.PositionStatus_Ok},
			{Symbol: "ZZZ", Invested: decimal.NewFromInt(5000), Status: domain.PositionStatus_QuoteUnavailable, StatusReason: "no data"},
		},
		TotalInvested: decimal.NewFromInt(10000),
		TotalValue:    decimal.NewFromInt(10000),
	}
}

func Test_gptRepositoryHandler_ExplainSimulation(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without key", func(t *testing.T) {
		repo, err := NewGptRepository("")
		require.NoError(t, err)
		_, err = repo.ExplainSimulation(ctx, sampleResult())
		require.ErrorIs(t, err, ErrNarrationDisabled)
	})

	t.Run("sends summary", func(t *testing.T) {
		handler := gptRepositoryHandler{
			send: func(ctx context.Context, req *chatgpt.ChatCompletionRequest) (*chatgpt.ChatResponse, error) {
				require.Len(t, req.Messages, 2)
				summary := req.Messages[1].Content
				require.True(t, strings.Contains(summary, "AAPL: invested $5000.00, now $10000.00 (100.00%)"), summary)
				require.True(t, strings.Contains(summary, "ZZZ: unavailable (no data)"), summary)
				return &chatgpt.ChatResponse{
					Choices: []chatgpt.ChatResponseChoice{
						{Message: chatgpt.ChatMessage{Content: "  You broke even.  "}},
					},
				}, nil
			},
		}

		out, err := handler.ExplainSimulation(ctx, sampleResult())
		require.NoError(t, err)
		require.Equal(t, "You broke even.", out)
	})

	t.Run("client error", func(t *testing.T) {
		handler := gptRepositoryHandler{
			send: func(ctx context.Context, req *chatgpt.ChatCompletionRequest) (*chatgpt.ChatResponse, error) {
				return nil, errors.New("rate limited")
			},
		}
		_, err := handler.ExplainSimulation(ctx, sampleResult())
		require.Error(t, err)
	})
}
