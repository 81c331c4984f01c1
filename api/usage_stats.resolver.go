package api

import (
	"fmt"
	"net/http"

	"portfoliosim/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) usageStats(c *gin.Context) {
	if m.Db == nil {
		returnErrorJsonCode(fmt.Errorf("usage stats are not available without a database"), c, http.StatusServiceUnavailable)
		return
	}

	stats, err := repository.GetUsageStats(m.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, stats)
}
