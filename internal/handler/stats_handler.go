package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Summary godoc
// @Summary Dashboard statistics
// @Description Figures that cannot be computed are reported as zero.
// @Tags Stats
// @Produce json
// @Success 200 {object} models.Stats
// @Router /stats [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.stats.Summary(c.Request.Context()))
}
