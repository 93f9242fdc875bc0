package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/response"
)

// SetupHandler provisions the schema.
type SetupHandler struct {
	setup *service.SetupService
}

// NewSetupHandler constructs a SetupHandler.
func NewSetupHandler(setup *service.SetupService) *SetupHandler {
	return &SetupHandler{setup: setup}
}

// Run godoc
// @Summary Create missing tables
// @Description Each table is attempted independently; per-table errors are reported in the results.
// @Tags Setup
// @Produce json
// @Success 200 {object} models.SetupResult
// @Router /setup [post]
func (h *SetupHandler) Run(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.setup.Run(c.Request.Context()))
}
