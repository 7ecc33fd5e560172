package bookings

import (
	"errors"
	"time"
)

var (
	// ErrBookingNotFound is returned when a booking ID does not exist
	ErrBookingNotFound = errors.New("booking not found")
	// ErrDatesUnavailable is returned when the requested range overlaps an
	// existing non-cancelled booking for the same vehicle
	ErrDatesUnavailable = errors.New("vehicle is not available for the selected dates")
)

// Status is a booking's lifecycle status. There is no enforced transition
// graph; an administrator may move a booking from any status to any other.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Booking represents a single reservation request
type Booking struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	NIC          string    `json:"nic"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	NumberOfDays int       `json:"number_of_days"`
	WithDriver   bool      `json:"with_driver"`
	TotalPrice   float64   `json:"total_price"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// DateRange is a closed date interval. A nil endpoint means the bound is
// unknown, in which case availability checks are vacuously true.
type DateRange struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// Overlaps reports whether two closed intervals overlap: a range overlaps
// another iff each range's start is on or before the other's end. Ranges
// with a missing endpoint never overlap anything.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.StartDate == nil || r.EndDate == nil || other.StartDate == nil || other.EndDate == nil {
		return false
	}
	return !r.StartDate.After(*other.EndDate) && !r.EndDate.Before(*other.StartDate)
}

// CreateBookingRequest is the request body for submitting a booking.
// Customer fields are free text; the day count and total price are derived
// server-side from the vehicle's rate card.
type CreateBookingRequest struct {
	VehicleID    string `json:"vehicle_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	NIC          string `json:"nic" binding:"required"`
	StartDate    string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" binding:"required,datetime=2006-01-02"`
	WithDriver   bool   `json:"with_driver"`
}

// UpdateStatusRequest is the request body for an admin status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

// BookingResponse is a booking enriched with its vehicle's name for listings.
// Deleted vehicles leave dangling references; those surface as an
// unknown-vehicle fallback rather than an error.
type BookingResponse struct {
	*Booking
	VehicleName string `json:"vehicle_name"`
}

// UnknownVehicleName is the display fallback for dangling vehicle references
const UnknownVehicleName = "Unknown vehicle"
