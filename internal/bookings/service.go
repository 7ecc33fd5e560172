package bookings

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/richxcame/rentaride/internal/pricing"
	"github.com/richxcame/rentaride/pkg/logger"
	"github.com/richxcame/rentaride/pkg/middleware"
)

const dateLayout = "2006-01-02"

// Service handles booking business logic
type Service struct {
	repo     RepositoryInterface
	fleet    FleetStore
	notifier Notifier

	// idempotency maps a client-supplied key to the booking it created,
	// so a double-submitted form resolves to the same booking
	idempotencyMu sync.Mutex
	idempotency   map[string]string

	now func() time.Time
}

// NewService creates a new booking service
func NewService(repo RepositoryInterface, fleet FleetStore, notifier Notifier) *Service {
	return &Service{
		repo:        repo,
		fleet:       fleet,
		notifier:    notifier,
		idempotency: make(map[string]string),
		now:         time.Now,
	}
}

// ListBookings returns all bookings enriched with vehicle names. Bookings
// whose vehicle has since been deleted keep their record and surface with a
// fallback name.
func (s *Service) ListBookings(ctx context.Context) ([]*BookingResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, s.toResponse(ctx, b))
	}
	return result, nil
}

// GetBooking returns a booking by ID
func (s *Service) GetBooking(ctx context.Context, id string) (*BookingResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, b), nil
}

// GetBookedDates returns the date ranges of a vehicle's active bookings.
// Cancelled bookings do not block dates and are excluded.
func (s *Service) GetBookedDates(ctx context.Context, vehicleID string) ([]DateRange, error) {
	list, err := s.repo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	ranges := make([]DateRange, 0, len(list))
	for _, b := range list {
		if b.Status == StatusCancelled {
			continue
		}
		start, end := b.StartDate, b.EndDate
		ranges = append(ranges, DateRange{StartDate: &start, EndDate: &end})
	}
	return ranges, nil
}

// IsVehicleAvailable reports whether a vehicle is free for the candidate
// range. A candidate with a missing endpoint is vacuously available: there
// is nothing concrete to conflict with yet.
func (s *Service) IsVehicleAvailable(ctx context.Context, vehicleID string, candidate DateRange) (bool, error) {
	if candidate.StartDate == nil || candidate.EndDate == nil {
		return true, nil
	}

	booked, err := s.GetBookedDates(ctx, vehicleID)
	if err != nil {
		return false, err
	}

	for _, r := range booked {
		if candidate.Overlaps(r) {
			return false, nil
		}
	}
	return true, nil
}

// Quote prices a prospective rental of a vehicle over a date range
func (s *Service) Quote(ctx context.Context, vehicleID string, start, end time.Time, withDriver bool) (pricing.Quote, error) {
	vehicle, err := s.fleet.GetByID(ctx, vehicleID)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.QuoteForRange(vehicle.RateCard(), start, end, withDriver), nil
}

// CreateBooking validates availability and stores a new pending booking.
// The day count and total price are always derived server-side from the
// vehicle's rate card; client-supplied totals are never trusted. When the
// rental period spans the current moment the vehicle is flagged unavailable.
//
// A non-empty idempotencyKey makes the call replay-safe: a repeated key
// returns the booking created by the first call instead of a conflict.
func (s *Service) CreateBooking(ctx context.Context, req *CreateBookingRequest, idempotencyKey string) (*Booking, error) {
	if idempotencyKey != "" {
		s.idempotencyMu.Lock()
		existingID, seen := s.idempotency[idempotencyKey]
		s.idempotencyMu.Unlock()
		if seen {
			return s.repo.GetByID(ctx, existingID)
		}
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.fleet.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	available, err := s.IsVehicleAvailable(ctx, req.VehicleID, DateRange{StartDate: &startDate, EndDate: &endDate})
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrDatesUnavailable
	}

	quote := pricing.QuoteForRange(vehicle.RateCard(), startDate, endDate, req.WithDriver)

	booking := &Booking{
		VehicleID:    req.VehicleID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		NIC:          req.NIC,
		StartDate:    startDate,
		EndDate:      endDate,
		NumberOfDays: quote.NumberOfDays,
		WithDriver:   req.WithDriver,
		TotalPrice:   quote.Total,
		Status:       StatusPending,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	if idempotencyKey != "" {
		s.idempotencyMu.Lock()
		s.idempotency[idempotencyKey] = created.ID
		s.idempotencyMu.Unlock()
	}

	if s.spansNow(startDate, endDate) {
		if _, err := s.fleet.SetAvailability(ctx, req.VehicleID, false); err != nil {
			logger.WithContext(ctx).Warn("failed to flag vehicle unavailable",
				zap.String("vehicle_id", req.VehicleID),
				zap.Error(err))
		}
	}

	middleware.CountBookingCreated()
	if s.notifier != nil {
		s.notifier.BookingCreated(created)
	}

	logger.WithContext(ctx).Info("booking created",
		zap.String("booking_id", created.ID),
		zap.String("vehicle_id", created.VehicleID),
		zap.Int("number_of_days", created.NumberOfDays),
		zap.Float64("total_price", created.TotalPrice))

	return created, nil
}

// UpdateStatus changes a booking's status. Any status may move to any other.
// Cancelling a booking does not restore the vehicle's availability flag;
// that remains an explicit administrator action.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BookingStatusChanged(updated)
	}

	logger.WithContext(ctx).Info("booking status updated",
		zap.String("booking_id", updated.ID),
		zap.String("status", string(updated.Status)))

	return updated, nil
}

func (s *Service) toResponse(ctx context.Context, b *Booking) *BookingResponse {
	name := UnknownVehicleName
	if vehicle, err := s.fleet.GetByID(ctx, b.VehicleID); err == nil {
		name = vehicle.Name
	}
	return &BookingResponse{Booking: b, VehicleName: name}
}

// spansNow reports whether the rental period covers the current moment
func (s *Service) spansNow(start, end time.Time) bool {
	now := s.now()
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
	return !now.Before(start) && !now.After(endOfDay)
}
