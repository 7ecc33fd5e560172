package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Repository is an in-memory booking store. State is process-local and
// volatile; a restart returns the store to its seed contents.
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
	order    []string
}

// NewRepository creates a new in-memory booking repository
func NewRepository() *Repository {
	return &Repository{
		bookings: make(map[string]*Booking),
	}
}

// Seed loads bookings into the store, skipping IDs that already exist
func (r *Repository) Seed(bookings []*Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bookings {
		if _, exists := r.bookings[b.ID]; exists {
			continue
		}
		r.bookings[b.ID] = cloneBooking(b)
		r.order = append(r.order, b.ID)
	}
}

// List returns all bookings in insertion order
func (r *Repository) List(ctx context.Context) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Booking, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, cloneBooking(r.bookings[id]))
	}
	return result, nil
}

// GetByID returns a booking by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

// ListByVehicle returns all bookings referencing a vehicle, in insertion order
func (r *Repository) ListByVehicle(ctx context.Context, vehicleID string) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.VehicleID == vehicleID {
			result = append(result, cloneBooking(b))
		}
	}
	return result, nil
}

// Insert stores a booking, assigning an ID when the booking has none.
// No overlap validation happens here.
func (r *Repository) Insert(ctx context.Context, b *Booking) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBooking(b)
	if stored.ID == "" {
		stored.ID = r.nextID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	r.bookings[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return cloneBooking(stored), nil
}

// UpdateStatus sets a booking's status and returns the updated booking
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	b.Status = status
	return cloneBooking(b), nil
}

// nextID derives an ID from the current timestamp, bumping on collision.
// Caller must hold the write lock.
func (r *Repository) nextID() string {
	ts := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("b%d", ts)
		if _, exists := r.bookings[id]; !exists {
			return id
		}
		ts++
	}
}

func cloneBooking(b *Booking) *Booking {
	clone := *b
	return &clone
}
