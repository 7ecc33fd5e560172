package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/rentaride/pkg/common"
	"github.com/richxcame/rentaride/pkg/pagination"
	"github.com/richxcame/rentaride/pkg/validation"
)

// AdminHandler handles admin HTTP requests for booking management
type AdminHandler struct {
	service *Service
}

// NewAdminHandler creates a new booking admin handler
func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers booking admin routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.PATCH("/:id/status", h.UpdateStatus)
	}
}

// ListBookings lists all bookings with pagination, optionally narrowed by status
func (h *AdminHandler) ListBookings(c *gin.Context) {
	params := pagination.ParseParams(c)
	statusFilter := c.Query("status")

	list, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	if statusFilter != "" {
		filtered := make([]*BookingResponse, 0, len(list))
		for _, b := range list {
			if string(b.Status) == statusFilter {
				filtered = append(filtered, b)
			}
		}
		list = filtered
	}

	total := int64(len(list))
	start := params.Offset
	if start > len(list) {
		start = len(list)
	}
	end := start + params.Limit
	if end > len(list) {
		end = len(list)
	}

	meta := pagination.BuildMeta(params.Limit, params.Offset, total)
	common.SuccessResponseWithMeta(c, list[start:end], meta)
}

// UpdateStatus changes a booking's status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	booking, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), Status(req.Status))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "booking not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to update booking status")
		return
	}

	common.SuccessResponse(c, booking)
}
