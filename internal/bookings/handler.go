package bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/richxcame/rentaride/internal/fleet"
	"github.com/richxcame/rentaride/pkg/common"
	"github.com/richxcame/rentaride/pkg/validation"
)

// Handler handles public storefront HTTP requests for bookings
type Handler struct {
	service *Service
}

// NewHandler creates a new booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers public booking routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/vehicles/:id/availability", h.CheckAvailability)
	rg.GET("/vehicles/:id/booked-dates", h.GetBookedDates)
	rg.GET("/vehicles/:id/quote", h.Quote)
}

// CreateBooking submits a new booking request. Clients may send an
// Idempotency-Key header to make retries safe.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), &req, c.GetHeader("Idempotency-Key"))
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrVehicleNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
		case errors.Is(err, ErrDatesUnavailable):
			common.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	common.SuccessResponseWithStatus(c, http.StatusCreated, booking, "Booking submitted successfully")
}

// GetBooking returns a single booking by ID
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "booking not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to get booking")
		return
	}

	common.SuccessResponse(c, booking)
}

// CheckAvailability reports whether a vehicle is free for a candidate range.
// Omitting either date yields available=true; there is nothing to conflict
// with until both bounds are known.
func (h *Handler) CheckAvailability(c *gin.Context) {
	candidate, ok := parseRangeQuery(c)
	if !ok {
		return
	}

	available, err := h.service.IsVehicleAvailable(c.Request.Context(), c.Param("id"), candidate)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to check availability")
		return
	}

	common.SuccessResponse(c, gin.H{"available": available})
}

// GetBookedDates returns the active booked date ranges for a vehicle
func (h *Handler) GetBookedDates(c *gin.Context) {
	ranges, err := h.service.GetBookedDates(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to get booked dates")
		return
	}

	common.SuccessResponse(c, ranges)
}

// Quote prices a prospective rental without creating a booking
func (h *Handler) Quote(c *gin.Context) {
	startDate, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid start_date")
		return
	}
	endDate, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid end_date")
		return
	}
	withDriver := c.Query("with_driver") == "true"

	quote, err := h.service.Quote(c.Request.Context(), c.Param("id"), startDate, endDate, withDriver)
	if err != nil {
		if errors.Is(err, fleet.ErrVehicleNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "vehicle not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "failed to calculate quote")
		return
	}

	common.SuccessResponse(c, quote)
}

func parseRangeQuery(c *gin.Context) (DateRange, bool) {
	var candidate DateRange
	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "invalid start_date")
			return DateRange{}, false
		}
		candidate.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "invalid end_date")
			return DateRange{}, false
		}
		candidate.EndDate = &t
	}
	return candidate, true
}
