package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"portfoliosim/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) stockStats(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("missing stock symbol"), c, http.StatusBadRequest)
		return
	}

	stats, err := m.StockStatsRepository.GetStats(c.Request.Context(), symbol)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			returnErrorJsonCode(err, c, http.StatusBadRequest)
		case errors.Is(err, domain.ErrSymbolNotFound):
			returnErrorJsonCode(err, c, http.StatusNotFound)
		default:
			returnErrorJson(err, c)
		}
		return
	}

	c.JSON(200, stats)
}
