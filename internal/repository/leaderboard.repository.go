package repository

import (
	"database/sql"
	"fmt"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	. "portfoliosim/internal/db/models/postgres/public/table"
	"portfoliosim/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaderboardRepository interface {
	Add(e domain.LeaderboardEntry) (*domain.LeaderboardEntry, error)
	ListTop(limit int) ([]domain.LeaderboardEntry, error)
}

type leaderboardRepositoryHandler struct {
	Db *sql.DB
}

func NewLeaderboardRepository(db *sql.DB) LeaderboardRepository {
	return leaderboardRepositoryHandler{Db: db}
}

func (h leaderboardRepositoryHandler) Add(e domain.LeaderboardEntry) (*domain.LeaderboardEntry, error) {
	if !e.StartingBalance.IsPositive() {
		return nil, domain.NewValidationError("startingBalance", "must be greater than 0")
	}
	m := model.LeaderboardEntry{
		LeaderboardEntryID: uuid.New(),
		UserID:             e.UserID,
		DisplayName:        e.DisplayName,
		StartingBalance:    e.StartingBalance.InexactFloat64(),
		FinalBalance:       e.FinalBalance.InexactFloat64(),
		InvestmentYear:     int32(e.InvestmentYear),
		Strategy:           string(e.Strategy),
		CreatedAt:          time.Now().UTC(),
	}
	query := LeaderboardEntry.
		INSERT(LeaderboardEntry.AllColumns).
		MODEL(m).
		RETURNING(LeaderboardEntry.AllColumns)

	result := model.LeaderboardEntry{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert leaderboard entry: %w", err)
	}

	out := leaderboardEntryFromModel(result)
	return &out, nil
}

// ListTop orders by return percent, best first.
func (h leaderboardRepositoryHandler) ListTop(limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, domain.NewValidationError("limit", "must be greater than 0")
	}
	returnPct := LeaderboardEntry.FinalBalance.
		SUB(LeaderboardEntry.StartingBalance).
		DIV(LeaderboardEntry.StartingBalance)

	query := LeaderboardEntry.
		SELECT(LeaderboardEntry.AllColumns).
		ORDER_BY(
			returnPct.DESC(),
			LeaderboardEntry.CreatedAt.ASC(),
		).
		LIMIT(int64(limit))

	results := []model.LeaderboardEntry{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	out := make([]domain.LeaderboardEntry, 0, len(results))
	for _, r := range results {
		out = append(out, leaderboardEntryFromModel(r))
	}
	return out, nil
}

func leaderboardEntryFromModel(m model.LeaderboardEntry) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{
		LeaderboardEntryID: m.LeaderboardEntryID,
		UserID:             m.UserID,
		DisplayName:        m.DisplayName,
		StartingBalance:    decimal.NewFromFloat(m.StartingBalance),
		FinalBalance:       decimal.NewFromFloat(m.FinalBalance),
		InvestmentYear:     int(m.InvestmentYear),
		Strategy:           domain.Strategy(m.Strategy),
		CreatedAt:          m.CreatedAt,
	}
}
