package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaderboardEntry struct {
	LeaderboardEntryID uuid.UUID       `json:"leaderboardEntryID"`
	UserID             string          `json:"userID"`
	DisplayName        string          `json:"displayName"`
	StartingBalance    decimal.Decimal `json:"startingBalance"`
	FinalBalance       decimal.Decimal `json:"finalBalance"`
	InvestmentYear     int             `json:"investmentYear"`
	Strategy           Strategy        `json:"strategy"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func (e LeaderboardEntry) ReturnPercent() decimal.Decimal {
	return PercentOf(e.FinalBalance.Sub(e.StartingBalance), e.StartingBalance)
}

// NewLeaderboardEntry records what the leaderboard keeps of a simulation.
func NewLeaderboardEntry(userID, displayName string, result PortfolioResult) LeaderboardEntry {
	return LeaderboardEntry{
		UserID:          userID,
		DisplayName:     displayName,
		StartingBalance: result.TotalInvested,
		FinalBalance:    result.TotalValue,
		InvestmentYear:  result.StartYear,
		Strategy:        result.Strategy,
	}
}
