package ports

import (
	"context"

	"github.com/katyregal/salon-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new principal.
// Role is never part of the input: registration always grants RoleUser.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines authentication use-cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// ActivitySink receives auth activity records for asynchronous persistence.
// Implementations must never block the caller.
type ActivitySink interface {
	Record(activity domain.AuthActivity)
}
