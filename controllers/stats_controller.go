package controllers

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// GET /api/admin/statistics?startDate=2025-01-01&endDate=2025-01-31
func (sc *StatsController) Statistics(c *gin.Context) {
	startRaw := c.Query("startDate")
	endRaw := c.Query("endDate")
	if startRaw == "" || endRaw == "" {
		resp.BadRequest(c, "startDate and endDate are required")
		return
	}

	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		resp.BadRequest(c, "invalid date format, use YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		resp.BadRequest(c, "invalid date format, use YYYY-MM-DD")
		return
	}

	sales, err := sc.Stats.SalesSummary(start, end)
	if err != nil {
		resp.DomainError(c, err)
		return
	}

	dishes, err := sc.Stats.DishOrderStats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"salesSummary":   sales,
		"dishOrderStats": dishes,
	})
}
