package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/katyregal/salon-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, _, _ string) error {
	return nil
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "user_1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate("secret", repo)(func(c echo.Context) error {
		called = true
		user, ok := Principal(c)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if user.ID != "user_1" || user.Role != domain.RoleAdmin {
			t.Fatalf("unexpected principal: %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Role: domain.RoleUser},
	}}

	cases := map[string]string{
		"missing header":   "",
		"wrong scheme":     "Token abc",
		"garbage token":    "Bearer not-a-token",
		"wrong secret":     "Bearer " + signToken(t, "other-secret", "user_1"),
		"unknown subject":  "Bearer " + signToken(t, "secret", "ghost"),
		"no subject claim": "Bearer " + signTokenWithoutSubject(t, "secret"),
	}

	for name, header := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := Authenticate("secret", repo)(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})(c)

		var he *echo.HTTPError
		if err == nil || !isHTTPError(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", name, err)
		}
	}
}

func signTokenWithoutSubject(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func isHTTPError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Role: domain.RoleUser},
	}}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	handlerErr := Authenticate("secret", repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	var he *echo.HTTPError
	if handlerErr == nil || !isHTTPError(handlerErr, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", handlerErr)
	}
}
