package fleet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/rentaride/pkg/common"
	"github.com/richxcame/rentaride/pkg/pagination"
	"github.com/richxcame/rentaride/pkg/validation"
)

// AdminHandler handles admin HTTP requests for fleet management
type AdminHandler struct {
	service *Service
}

// NewAdminHandler creates a new fleet admin handler
func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers fleet admin routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vehicles := rg.Group("/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
		vehicles.PATCH("/:id/availability", h.SetAvailability)
	}
}

// ListVehicles lists the whole fleet with pagination
func (h *AdminHandler) ListVehicles(c *gin.Context) {
	params := pagination.ParseParams(c)

	vehicles, err := h.service.ListVehicles(c.Request.Context(), Filters{})
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to list vehicles")
		return
	}

	total := int64(len(vehicles))
	start := params.Offset
	if start > len(vehicles) {
		start = len(vehicles)
	}
	end := start + params.Limit
	if end > len(vehicles) {
		end = len(vehicles)
	}

	meta := pagination.BuildMeta(params.Limit, params.Offset, total)
	common.SuccessResponseWithMeta(c, vehicles[start:end], meta)
}

// CreateVehicle adds a vehicle to the fleet
func (h *AdminHandler) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	vehicle, err := h.service.CreateVehicle(c.Request.Context(), vehicleFromRequest("", &req))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to create vehicle")
		return
	}

	common.SuccessResponseWithStatus(c, http.StatusCreated, vehicle, "Vehicle created successfully")
}

// UpdateVehicle fully replaces a vehicle
func (h *AdminHandler) UpdateVehicle(c *gin.Context) {
	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	vehicle, err := h.service.UpdateVehicle(c.Request.Context(), vehicleFromRequest(c.Param("id"), &req))
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to update vehicle")
		return
	}

	common.SuccessResponse(c, vehicle)
}

// DeleteVehicle removes a vehicle from the fleet
func (h *AdminHandler) DeleteVehicle(c *gin.Context) {
	if err := h.service.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to delete vehicle")
		return
	}

	common.SuccessResponseWithStatus(c, http.StatusOK, nil, "Vehicle deleted successfully")
}

// SetAvailability toggles a vehicle's availability flag
func (h *AdminHandler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	vehicle, err := h.service.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available)
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to update availability")
		return
	}

	common.SuccessResponse(c, vehicle)
}

func vehicleFromRequest(id string, req *CreateVehicleRequest) *Vehicle {
	return &Vehicle{
		ID:                id,
		Name:              req.Name,
		Type:              VehicleType(req.Type),
		Image:             req.Image,
		Images:            req.Images,
		Description:       req.Description,
		PricePerDay:       req.PricePerDay,
		PricePerKm:        req.PricePerKm,
		PricePerWeek:      req.PricePerWeek,
		PricePerMonth:     req.PricePerMonth,
		DriverOption:      req.DriverOption,
		DriverPricePerDay: req.DriverPricePerDay,
		Available:         req.Available,
		Features:          req.Features,
		Seats:             req.Seats,
		Transmission:      req.Transmission,
		FuelType:          req.FuelType,
	}
}
