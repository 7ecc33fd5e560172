package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/rentaride/pkg/common"
)

// Handler handles admin dashboard HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new analytics handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers analytics routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.GetDashboard)
}

// GetDashboard returns the admin dashboard summary
func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	common.SuccessResponse(c, stats)
}
