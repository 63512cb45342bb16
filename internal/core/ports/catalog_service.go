package ports

import (
	"context"

	"github.com/katyregal/salon-api/internal/core/domain"
)

// CreateServiceInput carries all data needed to create a catalog service.
type CreateServiceInput struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
	Image           string
	// Active defaults to true when nil.
	Active *bool
}

// UpdateServiceInput is a partial update; nil fields are left untouched.
type UpdateServiceInput struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Category        *string
	Image           *string
	Active          *bool
}

// CatalogService defines use-case operations for the service catalog.
type CatalogService interface {
	ListServices(ctx context.Context, filter ListServicesFilter) ([]*domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	CreateService(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, input UpdateServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}
