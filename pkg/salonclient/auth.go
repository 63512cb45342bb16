package salonclient

import (
	"context"
	"net/http"
	"time"
)

// User is the sanitized principal summary returned by the API. It never
// carries a token or credential.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult bundles the signed token with the user it authenticates.
type AuthResult struct {
	Token string
	User  User
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// authData is the wire shape of register/login data: user fields with the
// token embedded.
type authData struct {
	User
	Token string `json:"token"`
}

// Register creates an account and returns the token and sanitized user.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	var data authData
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", input, &data); err != nil {
		return nil, err
	}
	return &AuthResult{Token: data.Token, User: data.User}, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var data authData
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &data); err != nil {
		return nil, err
	}
	return &AuthResult{Token: data.Token, User: data.User}, nil
}

// Me returns the principal behind the configured token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the caller's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPost, "/api/auth/password", body, nil)
}
