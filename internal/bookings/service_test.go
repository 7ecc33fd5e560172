package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/rentaride/internal/fleet"
)

// MockRepository is an in-package mock for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]*Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Booking), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]*Booking, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Booking), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, b *Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if rf, ok := args.Get(0).(func(context.Context, *Booking) *Booking); ok {
		return rf(ctx, b), args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

// MockFleetStore is an in-package mock of the fleet store slice bookings use
type MockFleetStore struct {
	mock.Mock
}

func (m *MockFleetStore) GetByID(ctx context.Context, id string) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockFleetStore) SetAvailability(ctx context.Context, id string, available bool) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

// MockNotifier is an in-package mock for booking event broadcasts
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingCreated(b *Booking) {
	m.Called(b)
}

func (m *MockNotifier) BookingStatusChanged(b *Booking) {
	m.Called(b)
}

func testVehicle() *fleet.Vehicle {
	return &fleet.Vehicle{
		ID:                "v1",
		Name:              "Toyota Axio",
		Type:              fleet.TypeCar,
		PricePerDay:       1000,
		PricePerWeek:      6000,
		PricePerMonth:     20000,
		DriverOption:      true,
		DriverPricePerDay: 500,
		Available:         true,
	}
}

func dateAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func rangeOf(start, end time.Time) DateRange {
	return DateRange{StartDate: &start, EndDate: &end}
}

// =============================================================================
// Test NewService
// =============================================================================

func TestNewService(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)

	assert.NotNil(t, service)
}

// =============================================================================
// Test GetBookedDates
// =============================================================================

func TestGetBookedDates_ExcludesCancelled(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockRepo.On("ListByVehicle", ctx, "v1").Return([]*Booking{
		{ID: "b1", VehicleID: "v1", StartDate: dateAt(2026, 9, 10), EndDate: dateAt(2026, 9, 14), Status: StatusConfirmed},
		{ID: "b2", VehicleID: "v1", StartDate: dateAt(2026, 9, 20), EndDate: dateAt(2026, 9, 22), Status: StatusCancelled},
		{ID: "b3", VehicleID: "v1", StartDate: dateAt(2026, 10, 1), EndDate: dateAt(2026, 10, 3), Status: StatusPending},
	}, nil)

	ranges, err := service.GetBookedDates(ctx, "v1")

	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, dateAt(2026, 9, 10), *ranges[0].StartDate)
	assert.Equal(t, dateAt(2026, 10, 3), *ranges[1].EndDate)
}

func TestGetBookedDates_NoBookings(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockRepo.On("ListByVehicle", ctx, "v1").Return([]*Booking{}, nil)

	ranges, err := service.GetBookedDates(ctx, "v1")

	require.NoError(t, err)
	assert.Empty(t, ranges)
}

// =============================================================================
// Test IsVehicleAvailable - closed-interval overlap
// =============================================================================

func TestIsVehicleAvailable(t *testing.T) {
	booked := []*Booking{
		{ID: "b1", VehicleID: "v1", StartDate: dateAt(2026, 9, 10), EndDate: dateAt(2026, 9, 14), Status: StatusConfirmed},
	}

	tests := []struct {
		name      string
		candidate DateRange
		want      bool
	}{
		{"disjoint before", rangeOf(dateAt(2026, 9, 1), dateAt(2026, 9, 9)), true},
		{"disjoint after", rangeOf(dateAt(2026, 9, 15), dateAt(2026, 9, 18)), true},
		{"shared end date conflicts", rangeOf(dateAt(2026, 9, 14), dateAt(2026, 9, 18)), false},
		{"shared start date conflicts", rangeOf(dateAt(2026, 9, 5), dateAt(2026, 9, 10)), false},
		{"fully inside", rangeOf(dateAt(2026, 9, 11), dateAt(2026, 9, 12)), false},
		{"fully covering", rangeOf(dateAt(2026, 9, 1), dateAt(2026, 9, 30)), false},
		{"missing end date is vacuously available", DateRange{StartDate: ptr(dateAt(2026, 9, 12))}, true},
		{"missing both dates is vacuously available", DateRange{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockFleet := new(MockFleetStore)
			service := NewService(mockRepo, mockFleet, nil)
			ctx := context.Background()

			mockRepo.On("ListByVehicle", ctx, "v1").Return(booked, nil).Maybe()

			available, err := service.IsVehicleAvailable(ctx, "v1", tt.candidate)

			require.NoError(t, err)
			assert.Equal(t, tt.want, available)
		})
	}
}

func TestIsVehicleAvailable_CancelledDoesNotBlock(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockRepo.On("ListByVehicle", ctx, "v1").Return([]*Booking{
		{ID: "b1", VehicleID: "v1", StartDate: dateAt(2026, 9, 10), EndDate: dateAt(2026, 9, 14), Status: StatusCancelled},
	}, nil)

	available, err := service.IsVehicleAvailable(ctx, "v1", rangeOf(dateAt(2026, 9, 12), dateAt(2026, 9, 13)))

	require.NoError(t, err)
	assert.True(t, available)
}

// =============================================================================
// Test CreateBooking
// =============================================================================

func TestCreateBooking_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	mockNotifier := new(MockNotifier)
	service := NewService(mockRepo, mockFleet, mockNotifier)
	service.now = func() time.Time { return dateAt(2026, 8, 1) }
	ctx := context.Background()

	mockFleet.On("GetByID", ctx, "v1").Return(testVehicle(), nil)
	mockRepo.On("ListByVehicle", ctx, "v1").Return([]*Booking{}, nil)
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*bookings.Booking")).Return(func(ctx context.Context, b *Booking) *Booking {
		created := *b
		created.ID = "b100"
		return &created
	}, nil)
	mockNotifier.On("BookingCreated", mock.AnythingOfType("*bookings.Booking")).Return()

	req := &CreateBookingRequest{
		VehicleID:    "v1",
		CustomerName: "Nuwan Perera",
		PhoneNumber:  "+94771234567",
		NIC:          "912345678V",
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
		WithDriver:   true,
	}

	booking, err := service.CreateBooking(ctx, req, "")

	require.NoError(t, err)
	assert.Equal(t, "b100", booking.ID)
	assert.Equal(t, StatusPending, booking.Status)
	assert.Equal(t, 3, booking.NumberOfDays)
	// 3 days at 1000/day plus 3 days of driver at 500/day
	assert.Equal(t, 4500.0, booking.TotalPrice)
	mockFleet.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertCalled(t, "BookingCreated", mock.AnythingOfType("*bookings.Booking"))
}

func TestCreateBooking_DatesUnavailable(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockFleet.On("GetByID", ctx, "v1").Return(testVehicle(), nil)
	mockRepo.On("ListByVehicle", ctx, "v1").Return([]*Booking{
		{ID: "b1", VehicleID: "v1", StartDate: dateAt(2026, 9, 10), EndDate: dateAt(2026, 9, 14), Status: StatusConfirmed},
	}, nil)

	req := &CreateBookingRequest{
		VehicleID:    "v1",
		CustomerName: "Nuwan Perera",
		PhoneNumber:  "+94771234567",
		NIC:          "912345678V",
		StartDate:    "2026-09-14",
		EndDate:      "2026-09-16",
	}

	booking, err := service.CreateBooking(ctx, req, "")

	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Nil(t, booking)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateBooking_VehicleNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockFleet.On("GetByID", ctx, "missing").Return(nil, fleet.ErrVehicleNotFound)

	req := &CreateBookingRequest{
		VehicleID:    "missing",
		CustomerName: "Nuwan Perera",
		PhoneNumber:  "+94771234567",
		NIC:          "912345678V",
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
	}

	booking, err := service.CreateBooking(ctx, req, "")

	assert.ErrorIs(t, err, fleet.ErrVehicleNotFound)
	assert.Nil(t, booking)
}

func TestCreateBooking_SpansNowFlagsVehicleUnavailable(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	service.now = func() time.Time { return time.Date(2026, 9, 11, 15, 30, 0, 0, time.UTC) }
	ctx := context.Background()

	mockFleet.On("GetByID", ctx, "v1").Return(testVehicle(), nil)
	mockRepo.On("ListByVehicle", ctx, "v1").Return([]*Booking{}, nil)
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*bookings.Booking")).Return(func(ctx context.Context, b *Booking) *Booking {
		created := *b
		created.ID = "b100"
		return &created
	}, nil)
	mockFleet.On("SetAvailability", ctx, "v1", false).Return(testVehicle(), nil)

	req := &CreateBookingRequest{
		VehicleID:    "v1",
		CustomerName: "Nuwan Perera",
		PhoneNumber:  "+94771234567",
		NIC:          "912345678V",
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-14",
	}

	_, err := service.CreateBooking(ctx, req, "")

	require.NoError(t, err)
	mockFleet.AssertCalled(t, "SetAvailability", ctx, "v1", false)
}

func TestCreateBooking_IdempotencyKeyReplaysExisting(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	service.now = func() time.Time { return dateAt(2026, 8, 1) }
	ctx := context.Background()

	created := &Booking{ID: "b100", VehicleID: "v1", Status: StatusPending}
	mockFleet.On("GetByID", ctx, "v1").Return(testVehicle(), nil)
	mockRepo.On("ListByVehicle", ctx, "v1").Return([]*Booking{}, nil)
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*bookings.Booking")).Return(created, nil).Once()
	mockRepo.On("GetByID", ctx, "b100").Return(created, nil)

	req := &CreateBookingRequest{
		VehicleID:    "v1",
		CustomerName: "Nuwan Perera",
		PhoneNumber:  "+94771234567",
		NIC:          "912345678V",
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-12",
	}

	first, err := service.CreateBooking(ctx, req, "key-1")
	require.NoError(t, err)

	second, err := service.CreateBooking(ctx, req, "key-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	mockRepo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	req := &CreateBookingRequest{
		VehicleID:    "v1",
		CustomerName: "Nuwan Perera",
		PhoneNumber:  "+94771234567",
		NIC:          "912345678V",
		StartDate:    "10-09-2026",
		EndDate:      "2026-09-12",
	}

	booking, err := service.CreateBooking(ctx, req, "")

	assert.Error(t, err)
	assert.Nil(t, booking)
}

// =============================================================================
// Test UpdateStatus
// =============================================================================

func TestUpdateStatus_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	mockNotifier := new(MockNotifier)
	service := NewService(mockRepo, mockFleet, mockNotifier)
	ctx := context.Background()

	updated := &Booking{ID: "b1", VehicleID: "v1", Status: StatusConfirmed}
	mockRepo.On("UpdateStatus", ctx, "b1", StatusConfirmed).Return(updated, nil)
	mockNotifier.On("BookingStatusChanged", updated).Return()

	booking, err := service.UpdateStatus(ctx, "b1", StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)
	mockNotifier.AssertCalled(t, "BookingStatusChanged", updated)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockRepo.On("UpdateStatus", ctx, "missing", StatusConfirmed).Return(nil, ErrBookingNotFound)

	booking, err := service.UpdateStatus(ctx, "missing", StatusConfirmed)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, booking)
}

func TestUpdateStatus_CancellationDoesNotRestoreAvailability(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	cancelled := &Booking{ID: "b1", VehicleID: "v1", Status: StatusCancelled}
	mockRepo.On("UpdateStatus", ctx, "b1", StatusCancelled).Return(cancelled, nil)

	_, err := service.UpdateStatus(ctx, "b1", StatusCancelled)

	require.NoError(t, err)
	mockFleet.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
}

// =============================================================================
// Test ListBookings
// =============================================================================

func TestListBookings_UnknownVehicleFallback(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]*Booking{
		{ID: "b1", VehicleID: "v1"},
		{ID: "b2", VehicleID: "deleted"},
	}, nil)
	mockFleet.On("GetByID", ctx, "v1").Return(testVehicle(), nil)
	mockFleet.On("GetByID", ctx, "deleted").Return(nil, fleet.ErrVehicleNotFound)

	list, err := service.ListBookings(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Toyota Axio", list[0].VehicleName)
	assert.Equal(t, UnknownVehicleName, list[1].VehicleName)
}

func TestListBookings_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	mockFleet := new(MockFleetStore)
	service := NewService(mockRepo, mockFleet, nil)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return(nil, errors.New("store failure"))

	list, err := service.ListBookings(ctx)

	assert.Error(t, err)
	assert.Nil(t, list)
}

func ptr(t time.Time) *time.Time {
	return &t
}
