package ports

import (
	"context"

	"github.com/katyregal/salon-api/internal/core/domain"
)

// ListServicesFilter carries the recognized query parameters for listing
// catalog services. Zero values mean "no filter".
type ListServicesFilter struct {
	Category string // exact, case-sensitive match
	Active   *bool  // nil = both active and inactive
	Search   string // free-text search over name/description/category
}

// ServicePatch is a partial update; nil fields are left untouched.
type ServicePatch struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Category        *domain.Category
	Image           *string
	Active          *bool
}

// CatalogRepository defines persistence operations for catalog services.
type CatalogRepository interface {
	// Create inserts the service and fills in its generated ID.
	Create(ctx context.Context, s *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// Update applies a partial merge and returns the updated record.
	Update(ctx context.Context, id string, patch ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	// List returns all matching services ordered by creation time, newest first.
	List(ctx context.Context, filter ListServicesFilter) ([]*domain.Service, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}
