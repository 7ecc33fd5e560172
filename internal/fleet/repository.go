package fleet

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Repository is the in-memory fleet store. State is volatile and
// process-local; every read returns a copy so callers cannot mutate
// store state behind the lock.
type Repository struct {
	mu       sync.RWMutex
	vehicles map[string]*Vehicle
	order    []string // insertion order for stable listings
}

// NewRepository creates an empty in-memory fleet store
func NewRepository() *Repository {
	return &Repository{
		vehicles: make(map[string]*Vehicle),
	}
}

// Seed loads vehicles with their existing IDs, skipping duplicates
func (r *Repository) Seed(vehicles []*Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range vehicles {
		if _, exists := r.vehicles[v.ID]; exists {
			continue
		}
		clone := cloneVehicle(v)
		r.vehicles[clone.ID] = clone
		r.order = append(r.order, clone.ID)
	}
}

// List returns vehicles matching the given filters in insertion order
func (r *Repository) List(ctx context.Context, filters Filters) ([]*Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Vehicle, 0, len(r.order))
	for _, id := range r.order {
		v := r.vehicles[id]
		if matchesFilters(v, filters) {
			result = append(result, cloneVehicle(v))
		}
	}
	return result, nil
}

// GetByID returns the vehicle with the given ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vehicles[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}
	return cloneVehicle(v), nil
}

// Create adds a vehicle to the fleet, assigning a fresh ID derived from the
// creation timestamp, and returns the stored vehicle
func (r *Repository) Create(ctx context.Context, v *Vehicle) (*Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneVehicle(v)
	clone.ID = r.nextID()
	r.vehicles[clone.ID] = clone
	r.order = append(r.order, clone.ID)

	return cloneVehicle(clone), nil
}

// Update replaces the vehicle with the matching ID and returns the updated
// vehicle, or ErrVehicleNotFound
func (r *Repository) Update(ctx context.Context, v *Vehicle) (*Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[v.ID]; !ok {
		return nil, ErrVehicleNotFound
	}
	clone := cloneVehicle(v)
	r.vehicles[v.ID] = clone

	return cloneVehicle(clone), nil
}

// Delete removes the vehicle with the matching ID, or returns
// ErrVehicleNotFound. Bookings referencing the vehicle are left untouched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vehicles[id]; !ok {
		return ErrVehicleNotFound
	}
	delete(r.vehicles, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetAvailability sets the availability flag and returns the updated vehicle
func (r *Repository) SetAvailability(ctx context.Context, id string, available bool) (*Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vehicles[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}
	v.Available = available

	return cloneVehicle(v), nil
}

// nextID derives an ID from the current timestamp, bumping on collision.
// Callers must hold the write lock.
func (r *Repository) nextID() string {
	ms := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("v%d", ms)
		if _, exists := r.vehicles[id]; !exists {
			return id
		}
		ms++
	}
}

func matchesFilters(v *Vehicle, f Filters) bool {
	if f.Type != "" && f.Type != "all" && string(v.Type) != f.Type {
		return false
	}
	if f.DriverOption == DriverFilterWith && !v.DriverOption {
		return false
	}
	if f.DriverOption == DriverFilterWithout && v.DriverOption {
		return false
	}
	if f.MinPrice != nil && v.PricePerDay < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && v.PricePerDay > *f.MaxPrice {
		return false
	}
	if f.Availability == AvailabilityFilterAvailable && !v.Available {
		return false
	}
	if f.Availability == AvailabilityFilterBooked && v.Available {
		return false
	}
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(v.Name), q) &&
			!strings.Contains(strings.ToLower(string(v.Type)), q) {
			return false
		}
	}
	return true
}

func cloneVehicle(v *Vehicle) *Vehicle {
	clone := *v
	clone.Images = append([]string(nil), v.Images...)
	clone.Features = append([]string(nil), v.Features...)
	return &clone
}
