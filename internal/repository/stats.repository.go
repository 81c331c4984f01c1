package repository

import (
	"database/sql"
	"fmt"
)

type UsageStats struct {
	UniqueUsers        int `json:"uniqueUsers"`
	SimulationsRun     int `json:"simulations"`
	LeaderboardEntries int `json:"leaderboardEntries"`
}

func GetUsageStats(tx *sql.DB) (*UsageStats, error) {
	query := `select
	(select count(distinct user_id) from api_request) as "distinct_users",
	(select count(*) from api_request where route = '/simulate' and status_code = 200) as "num_simulations_run",
	(select count(*) from leaderboard_entry) as "num_leaderboard_entries";`

	row := tx.QueryRow(query)

	out := UsageStats{}

	err := row.Scan(&out.UniqueUsers, &out.SimulationsRun, &out.LeaderboardEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return &out, nil
}
