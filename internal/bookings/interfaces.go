package bookings

import (
	"context"

	"github.com/richxcame/rentaride/internal/fleet"
)

// RepositoryInterface defines the interface for booking store operations.
// Insert performs no overlap validation; availability is the service's
// responsibility. Bookings are never deleted.
type RepositoryInterface interface {
	List(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]*Booking, error)
	Insert(ctx context.Context, b *Booking) (*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
}

// FleetStore is the slice of the fleet store the booking flow needs
type FleetStore interface {
	GetByID(ctx context.Context, id string) (*fleet.Vehicle, error)
	SetAvailability(ctx context.Context, id string, available bool) (*fleet.Vehicle, error)
}

// Notifier broadcasts booking events to connected admin consoles
type Notifier interface {
	BookingCreated(b *Booking)
	BookingStatusChanged(b *Booking)
}
