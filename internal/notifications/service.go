package notifications

import (
	"github.com/richxcame/rentaride/internal/bookings"
)

// Event types pushed to connected admin consoles
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// Broadcaster fans an event out to every connected client
type Broadcaster interface {
	BroadcastEvent(eventType string, data interface{})
}

// Service pushes booking lifecycle events to the admin console feed.
// Broadcasts are best-effort; a console that is not connected simply
// misses the event and catches up from the booking list.
type Service struct {
	broadcaster Broadcaster
}

// NewService creates a new notifications service
func NewService(broadcaster Broadcaster) *Service {
	return &Service{broadcaster: broadcaster}
}

// BookingCreated announces a newly submitted booking
func (s *Service) BookingCreated(b *bookings.Booking) {
	s.broadcaster.BroadcastEvent(EventBookingCreated, b)
}

// BookingStatusChanged announces a booking status transition
func (s *Service) BookingStatusChanged(b *bookings.Booking) {
	s.broadcaster.BroadcastEvent(EventBookingStatusChanged, b)
}
