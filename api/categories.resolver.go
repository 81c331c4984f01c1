package api

import (
	"fmt"
	"net/http"

	"portfoliosim/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) categories(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		category, ok := domain.FindCategory(id)
		if !ok {
			returnErrorJsonCode(fmt.Errorf("unknown category %q", id), c, http.StatusNotFound)
			return
		}
		c.JSON(200, []domain.Category{*category})
		return
	}

	c.JSON(200, domain.Categories)
}
