package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfoliosim/internal/domain"

	"github.com/ayush6624/go-chatgpt"
)

var ErrNarrationDisabled = errors.New("simulation narration is not configured")

type GptRepository interface {
	ExplainSimulation(ctx context.Context, result domain.PortfolioResult) (string, error)
}

type gptRepositoryHandler struct {
	send func(ctx context.Context, req *chatgpt.ChatCompletionRequest) (*chatgpt.ChatResponse, error)
}

// NewGptRepository returns a repository that answers ErrNarrationDisabled
// when apiKey is empty.
func NewGptRepository(apiKey string) (GptRepository, error) {
	if apiKey == "" {
		return gptRepositoryHandler{}, nil
	}
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		send: client.Send,
	}, nil
}

const explainPrompt = `
You are a friendly investing teacher talking to a beginner who just ran a historical
investment simulation. Explain what happened in three short paragraphs:

1. how the portfolio did overall, in plain dollars
2. which picks helped and which hurt, and why concentration matters
3. how it compares to leaving the cash idle, a savings account and the S&P 500

Never give personal financial advice. Do not use jargon without explaining it.
Positions marked unavailable could not be priced and count as a total loss of the
money assigned to them; mention this if there are any.
`

func (h gptRepositoryHandler) ExplainSimulation(ctx context.Context, result domain.PortfolioResult) (string, error) {
	if h.send == nil {
		return "", ErrNarrationDisabled
	}

	res, err := h.send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: explainPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: summarizeForPrompt(result),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get simulation explanation: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("failed to get simulation explanation: empty response")
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}

func summarizeForPrompt(result domain.PortfolioResult) string {
	r := result.Rounded()
	b := strings.Builder{}
	fmt.Fprintf(&b, "strategy: %s\n", r.Strategy)
	fmt.Fprintf(&b, "period: %d to %d (%d months)\n", r.StartYear, r.EndYear, r.MonthsHeld)
	fmt.Fprintf(&b, "invested: $%s, final value: $%s, gain: $%s (%s%%)\n",
		r.TotalInvested.StringFixed(2), r.TotalValue.StringFixed(2), r.TotalGain.StringFixed(2), r.TotalGainPercent.StringFixed(2))
	fmt.Fprintf(&b, "idle cash: $%s, savings account: $%s, S&P 500: $%s\n",
		r.Comparisons.Mattress.StringFixed(2), r.Comparisons.SavingsAccount.StringFixed(2), r.Comparisons.MarketIndex.StringFixed(2))
	b.WriteString("positions:\n")
	for _, p := range r.Positions {
		if p.Status == domain.PositionStatus_QuoteUnavailable {
			fmt.Fprintf(&b, "- %s: unavailable (%s)\n", p.Symbol, p.StatusReason)
			continue
		}
		fmt.Fprintf(&b, "- %s: invested $%s, now $%s (%s%%)\n",
			p.Symbol, p.Invested.StringFixed(2), p.FinalValue.StringFixed(2), p.GainPercent.StringFixed(2))
	}
	return b.String()
}
