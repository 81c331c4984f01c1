package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type benchmarkYear struct {
	Year              int             `json:"year"`
	IndexLevelAtStart decimal.Decimal `json:"indexLevelAtStart"`
	IndexLevelNow     decimal.Decimal `json:"indexLevelNow"`
	MarketReturn      decimal.Decimal `json:"marketReturn"`
}

type benchmarkResponse struct {
	SavingsRate decimal.Decimal `json:"savingsRate"`
	Years       []benchmarkYear `json:"years"`
}

func (m ApiHandler) benchmark(c *gin.Context) {
	out := benchmarkResponse{
		SavingsRate: m.BenchmarkRepository.SavingsRate(),
		Years:       []benchmarkYear{},
	}
	for _, b := range m.BenchmarkRepository.List() {
		out.Years = append(out.Years, benchmarkYear{
			Year:              b.Year,
			IndexLevelAtStart: b.IndexLevelAtStart,
			IndexLevelNow:     b.IndexLevelNow,
			MarketReturn:      b.MarketReturn().Round(4),
		})
	}

	c.JSON(200, out)
}
