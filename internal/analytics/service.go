package analytics

import (
	"context"
	"sort"

	"github.com/richxcame/rentaride/internal/bookings"
	"github.com/richxcame/rentaride/internal/fleet"
)

// recentBookingLimit caps the dashboard's recent-activity list
const recentBookingLimit = 5

// Service assembles dashboard statistics from the fleet and booking stores
type Service struct {
	fleet    FleetSource
	bookings BookingSource
}

// NewService creates a new analytics service
func NewService(fleetSource FleetSource, bookingSource BookingSource) *Service {
	return &Service{fleet: fleetSource, bookings: bookingSource}
}

// GetDashboardStats computes the admin dashboard summary. Revenue counts
// confirmed and completed bookings only; pending bookings are prospective
// and cancelled ones never earned.
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	vehicles, err := s.fleet.ListVehicles(ctx, fleet.Filters{})
	if err != nil {
		return nil, err
	}

	list, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalVehicles: len(vehicles),
		TotalBookings: len(list),
	}

	for _, v := range vehicles {
		if v.Available {
			stats.AvailableVehicles++
		}
	}

	for _, b := range list {
		switch b.Status {
		case bookings.StatusPending:
			stats.PendingBookings++
		case bookings.StatusConfirmed, bookings.StatusCompleted:
			stats.TotalRevenue += b.TotalPrice
		}
	}

	recent := make([]*bookings.BookingResponse, len(list))
	copy(recent, list)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentBookingLimit {
		recent = recent[:recentBookingLimit]
	}
	stats.RecentBookings = recent

	return stats, nil
}
