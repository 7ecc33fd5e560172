package fleet

import "context"

// RepositoryInterface defines the interface for fleet store operations
type RepositoryInterface interface {
	List(ctx context.Context, filters Filters) ([]*Vehicle, error)
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	Create(ctx context.Context, v *Vehicle) (*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) (*Vehicle, error)
	Delete(ctx context.Context, id string) error
	SetAvailability(ctx context.Context, id string, available bool) (*Vehicle, error)
}
