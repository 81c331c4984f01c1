package repository

import (
	"database/sql"
	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// requires the test postgres instance with migrations applied
func testDb(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping db test in short mode")
	}
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func Test_priceQuoteRepositoryHandler(t *testing.T) {
	db := testDb(t)
	_, err := db.Exec("TRUNCATE price_quote")
	require.NoError(t, err)

	repo := NewPriceQuoteRepository(db)
	key := domain.QuoteKey{Symbol: "AAPL", StartYear: 2020, EndYear: 2024}

	got, err := repo.Get(key)
	require.NoError(t, err)
	require.Nil(t, got)

	err = repo.Upsert(key, domain.PriceQuote{
		Symbol:    "AAPL",
		BuyPrice:  decimal.NewFromFloat(74.06),
		SellPrice: decimal.NewFromFloat(250.42),
	})
	require.NoError(t, err)
	err = repo.Upsert(key, domain.PriceQuote{
		Symbol:    "AAPL",
		BuyPrice:  decimal.NewFromFloat(74.06),
		SellPrice: decimal.NewFromFloat(251),
	})
	require.NoError(t, err)

	got, err = repo.Get(key)
	require.NoError(t, err)
	require.Equal(t, "74.06", got.BuyPrice.String())
	require.Equal(t, "251", got.SellPrice.String())
}

func Test_leaderboardRepositoryHandler(t *testing.T) {
	db := testDb(t)
	_, err := db.Exec("TRUNCATE leaderboard_entry")
	require.NoError(t, err)

	repo := NewLeaderboardRepository(db)
	for _, e := range []domain.LeaderboardEntry{
		{UserID: "u1", DisplayName: "ada", StartingBalance: decimal.NewFromInt(10000), FinalBalance: decimal.NewFromInt(12000), InvestmentYear: 2015, Strategy: domain.Strategy_LumpSum},
		{UserID: "u2", DisplayName: "bob", StartingBalance: decimal.NewFromInt(1000), FinalBalance: decimal.NewFromInt(3000), InvestmentYear: 2010, Strategy: domain.Strategy_DollarCostAverage},
		{UserID: "u3", DisplayName: "cy", StartingBalance: decimal.NewFromInt(5000), FinalBalance: decimal.NewFromInt(4000), InvestmentYear: 2022, Strategy: domain.Strategy_LumpSum},
	} {
		added, err := repo.Add(e)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, added.LeaderboardEntryID)
	}

	top, err := repo.ListTop(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "bob", top[0].DisplayName)
	require.Equal(t, "200", top[0].ReturnPercent().String())
	require.Equal(t, "ada", top[1].DisplayName)
}

func Test_latencyTrackingRepositoryHandler(t *testing.T) {
	db := testDb(t)
	profile, endProfile := domain.NewProfile()
	_, endSpan := profile.StartNewSpan("resolve quotes")
	endSpan()
	endProfile()

	requestID := uuid.New()
	err := NewLatencyTrackingRepository(db).Add(*profile, &requestID)
	require.NoError(t, err)
}

func Test_apiRequestRepositoryHandler(t *testing.T) {
	db := testDb(t)
	repo := NewApiRequestRepository(db)

	requestID := uuid.New()
	body := `{"startYear":2020}`
	added, err := repo.Add(model.APIRequest{
		RequestID:   requestID,
		Method:      "POST",
		Route:       "/simulate",
		RequestBody: &body,
		StartTs:     time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, requestID, added.RequestID)
	require.Nil(t, added.StatusCode)

	status := int32(200)
	durationMs := int64(42)
	added.StatusCode = &status
	added.DurationMs = &durationMs
	require.NoError(t, repo.Update(*added))

	var gotStatus int32
	err = db.QueryRow("SELECT status_code FROM api_request WHERE request_id = $1", requestID).Scan(&gotStatus)
	require.NoError(t, err)
	require.Equal(t, int32(200), gotStatus)
}

func Test_GetUsageStats(t *testing.T) {
	db := testDb(t)
	stats, err := GetUsageStats(db)
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.SimulationsRun, 0)
	require.GreaterOrEqual(t, stats.LeaderboardEntries, 0)
}
