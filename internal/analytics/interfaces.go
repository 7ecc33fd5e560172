package analytics

import (
	"context"

	"github.com/richxcame/rentaride/internal/bookings"
	"github.com/richxcame/rentaride/internal/fleet"
)

// FleetSource is the slice of the fleet the dashboard reads
type FleetSource interface {
	ListVehicles(ctx context.Context, filters fleet.Filters) ([]*fleet.Vehicle, error)
}

// BookingSource is the slice of the booking store the dashboard reads
type BookingSource interface {
	ListBookings(ctx context.Context) ([]*bookings.BookingResponse, error)
}
