package ports

import (
	"context"

	"github.com/katyregal/salon-api/internal/core/domain"
)

// AuthRepository defines the interface for principal persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// ActivityRepository persists auth activity records.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.AuthActivity) error
}
