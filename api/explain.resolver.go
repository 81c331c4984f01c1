package api

import (
	"errors"
	"fmt"
	"net/http"

	"portfoliosim/internal/repository"

	"github.com/gin-gonic/gin"
)

type explainResponse struct {
	Explanation string `json:"explanation"`
}

// explain re-runs the simulation from the request so the narration only
// ever describes numbers this server computed.
func (m ApiHandler) explain(c *gin.Context) {
	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	result, err := m.runSimulation(c.Request.Context(), requestBody)
	if err != nil {
		returnSimulationError(err, c)
		return
	}

	explanation, err := m.GptRepository.ExplainSimulation(c.Request.Context(), *result)
	if errors.Is(err, repository.ErrNarrationDisabled) {
		returnErrorJsonCode(err, c, http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, explainResponse{
		Explanation: explanation,
	})
}
