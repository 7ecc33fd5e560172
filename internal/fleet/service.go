package fleet

import "context"

// Service handles fleet business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new fleet service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListVehicles returns vehicles matching the storefront filters
func (s *Service) ListVehicles(ctx context.Context, filters Filters) ([]*Vehicle, error) {
	return s.repo.List(ctx, filters)
}

// GetVehicle returns a vehicle by ID
func (s *Service) GetVehicle(ctx context.Context, id string) (*Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateVehicle adds a vehicle to the fleet and returns it with its assigned ID
func (s *Service) CreateVehicle(ctx context.Context, v *Vehicle) (*Vehicle, error) {
	return s.repo.Create(ctx, v)
}

// UpdateVehicle replaces the vehicle with the matching ID
func (s *Service) UpdateVehicle(ctx context.Context, v *Vehicle) (*Vehicle, error) {
	return s.repo.Update(ctx, v)
}

// DeleteVehicle removes a vehicle from the fleet. Existing bookings that
// reference the vehicle are deliberately left in place; they surface with an
// unknown-vehicle fallback in booking listings.
func (s *Service) DeleteVehicle(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SetAvailability toggles the availability flag directly
func (s *Service) SetAvailability(ctx context.Context, id string, available bool) (*Vehicle, error) {
	return s.repo.SetAvailability(ctx, id, available)
}
