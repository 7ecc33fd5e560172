package fleet

import (
	"errors"

	"github.com/richxcame/rentaride/internal/pricing"
)

// ErrVehicleNotFound is returned when a vehicle ID does not exist in the fleet
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleType is the closed set of rentable vehicle categories
type VehicleType string

const (
	TypeMotorbike    VehicleType = "Motorbike"
	TypeThreeWheeler VehicleType = "Three-Wheeler"
	TypeCar          VehicleType = "Car"
	TypeBuddyVan     VehicleType = "Buddy Van"
	TypeVan          VehicleType = "Van"
)

// Vehicle represents a single rental asset
type Vehicle struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Type              VehicleType `json:"type"`
	Image             string      `json:"image"`
	Images            []string    `json:"images"`
	Description       string      `json:"description"`
	PricePerDay       float64     `json:"price_per_day"`
	PricePerKm        float64     `json:"price_per_km"`
	PricePerWeek      float64     `json:"price_per_week"`
	PricePerMonth     float64     `json:"price_per_month"`
	DriverOption      bool        `json:"driver_option"`
	DriverPricePerDay float64     `json:"driver_price_per_day"`
	Available         bool        `json:"available"`
	Features          []string    `json:"features"`
	Seats             int         `json:"seats"`
	Transmission      string      `json:"transmission"`
	FuelType          string      `json:"fuel_type"`
}

// RateCard returns the vehicle's pricing rate card
func (v *Vehicle) RateCard() pricing.RateCard {
	return pricing.RateCard{
		PricePerDay:       v.PricePerDay,
		PricePerWeek:      v.PricePerWeek,
		PricePerMonth:     v.PricePerMonth,
		DriverPricePerDay: v.DriverPricePerDay,
	}
}

// CreateVehicleRequest is the request body for adding a vehicle to the fleet.
// Prices are deliberately not range-checked; the rate card is
// administrator-controlled data.
type CreateVehicleRequest struct {
	Name              string   `json:"name" binding:"required"`
	Type              string   `json:"type" binding:"required,vehicle_type"`
	Image             string   `json:"image"`
	Images            []string `json:"images"`
	Description       string   `json:"description"`
	PricePerDay       float64  `json:"price_per_day"`
	PricePerKm        float64  `json:"price_per_km"`
	PricePerWeek      float64  `json:"price_per_week"`
	PricePerMonth     float64  `json:"price_per_month"`
	DriverOption      bool     `json:"driver_option"`
	DriverPricePerDay float64  `json:"driver_price_per_day"`
	Available         bool     `json:"available"`
	Features          []string `json:"features"`
	Seats             int      `json:"seats"`
	Transmission      string   `json:"transmission"`
	FuelType          string   `json:"fuel_type"`
}

// UpdateVehicleRequest is the request body for replacing a vehicle.
// Updates are full replacements of every field except the ID.
type UpdateVehicleRequest = CreateVehicleRequest

// SetAvailabilityRequest toggles a vehicle's availability flag directly
type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// DriverFilter narrows the fleet listing by driver option
type DriverFilter string

const (
	DriverFilterAll     DriverFilter = "all"
	DriverFilterWith    DriverFilter = "with"
	DriverFilterWithout DriverFilter = "without"
)

// AvailabilityFilter narrows the fleet listing by the availability flag
type AvailabilityFilter string

const (
	AvailabilityFilterAll       AvailabilityFilter = "all"
	AvailabilityFilterAvailable AvailabilityFilter = "available"
	AvailabilityFilterBooked    AvailabilityFilter = "booked"
)

// Filters are the storefront listing filters
type Filters struct {
	Type         string
	DriverOption DriverFilter
	MinPrice     *float64
	MaxPrice     *float64
	Availability AvailabilityFilter
	SearchQuery  string
}
