package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"portfoliosim/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

type leaderboardEntryResponse struct {
	LeaderboardEntryID uuid.UUID       `json:"leaderboardEntryID"`
	DisplayName        string          `json:"displayName"`
	StartingBalance    decimal.Decimal `json:"startingBalance"`
	FinalBalance       decimal.Decimal `json:"finalBalance"`
	ReturnPercent      decimal.Decimal `json:"returnPercent"`
	InvestmentYear     int             `json:"investmentYear"`
	Strategy           domain.Strategy `json:"strategy"`
}

func toLeaderboardEntryResponse(e domain.LeaderboardEntry) leaderboardEntryResponse {
	return leaderboardEntryResponse{
		LeaderboardEntryID: e.LeaderboardEntryID,
		DisplayName:        e.DisplayName,
		StartingBalance:    e.StartingBalance,
		FinalBalance:       e.FinalBalance,
		ReturnPercent:      e.ReturnPercent().Round(2),
		InvestmentYear:     e.InvestmentYear,
		Strategy:           e.Strategy,
	}
}

func (m ApiHandler) getLeaderboard(c *gin.Context) {
	if m.LeaderboardRepository == nil {
		returnErrorJsonCode(fmt.Errorf("leaderboard is not configured"), c, http.StatusServiceUnavailable)
		return
	}

	limit := defaultLeaderboardLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			returnErrorJsonCode(fmt.Errorf("limit must be a positive integer"), c, http.StatusBadRequest)
			return
		}
		limit = min(l, maxLeaderboardLimit)
	}

	entries, err := m.LeaderboardRepository.ListTop(limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []leaderboardEntryResponse{}
	for _, e := range entries {
		out = append(out, toLeaderboardEntryResponse(e))
	}

	c.JSON(200, out)
}

type addLeaderboardEntryRequest struct {
	DisplayName string          `json:"displayName"`
	Simulation  simulateRequest `json:"simulation"`
}

// addLeaderboardEntry records a simulation run by this server, never
// balances sent by the client.
func (m ApiHandler) addLeaderboardEntry(c *gin.Context) {
	if m.LeaderboardRepository == nil {
		returnErrorJsonCode(fmt.Errorf("leaderboard is not configured"), c, http.StatusServiceUnavailable)
		return
	}

	userAccountID := c.GetString("userAccountID")
	if userAccountID == "" {
		returnErrorJsonCode(fmt.Errorf("must be logged in to join the leaderboard"), c, http.StatusUnauthorized)
		return
	}

	var requestBody addLeaderboardEntryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	displayName := strings.TrimSpace(requestBody.DisplayName)
	if displayName == "" {
		displayName = c.GetString("displayName")
	}
	if displayName == "" {
		returnErrorJsonCode(fmt.Errorf("display name is required"), c, http.StatusBadRequest)
		return
	}

	result, err := m.runSimulation(c.Request.Context(), requestBody.Simulation)
	if err != nil {
		returnSimulationError(err, c)
		return
	}

	entry, err := m.LeaderboardRepository.Add(domain.NewLeaderboardEntry(userAccountID, displayName, *result))
	if err != nil {
		returnSimulationError(err, c)
		return
	}

	c.JSON(200, toLeaderboardEntryResponse(*entry))
}
