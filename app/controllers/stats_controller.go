package controllers

import (
	"net/http"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// Dashboard returns the admin summary counters.
func (c *StatsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.Dashboard()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	response.Success(w, stats)
}
