package fleet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/rentaride/pkg/common"
)

// Handler handles public storefront HTTP requests for the fleet
type Handler struct {
	service *Service
}

// NewHandler creates a new fleet handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers public fleet routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.ListVehicles)
	rg.GET("/vehicles/:id", h.GetVehicle)
}

// ListVehicles lists the fleet, optionally narrowed by storefront filters
func (h *Handler) ListVehicles(c *gin.Context) {
	filters := Filters{
		Type:         c.Query("type"),
		DriverOption: DriverFilter(c.DefaultQuery("driver_option", string(DriverFilterAll))),
		Availability: AvailabilityFilter(c.DefaultQuery("availability", string(AvailabilityFilterAll))),
		SearchQuery:  c.Query("q"),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "invalid min_price")
			return
		}
		filters.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "invalid max_price")
			return
		}
		filters.MaxPrice = &v
	}

	vehicles, err := h.service.ListVehicles(c.Request.Context(), filters)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to list vehicles")
		return
	}

	common.SuccessResponse(c, vehicles)
}

// GetVehicle returns a single vehicle by ID
func (h *Handler) GetVehicle(c *gin.Context) {
	vehicle, err := h.service.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to get vehicle")
		return
	}

	common.SuccessResponse(c, vehicle)
}
