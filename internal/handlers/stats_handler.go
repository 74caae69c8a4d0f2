package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenroots/treefund-backend/internal/services"
)

// StatsHandler handles aggregation HTTP requests
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats handles GET /donations/donation-stats. Public: impact figures are
// deliberately visible without authentication.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GlobalStats(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetSummary handles GET /donations/donation-summary
func (h *StatsHandler) GetSummary(c *gin.Context) {
	summary, err := h.statsService.Summary(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
