package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
)

type stubAuthRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) UpdatePassword(_ context.Context, id string, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

type stubSink struct {
	records []domain.AuthActivity
}

func (s *stubSink) Record(a domain.AuthActivity) {
	s.records = append(s.records, a)
}

func newTestAuthService(repo ports.AuthRepository, sink ports.ActivitySink) *AuthService {
	return NewAuthService(repo, sink, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, nil)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pass123",
		Phone:    "555-0100",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("registration must grant the user role, got %s", result.User.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), nil)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Name: "", Email: "a@b.com", Password: "x"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, nil)

	input := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pass"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	sink := &stubSink{}
	svc := newTestAuthService(repo, sink)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != result.User.ID {
		t.Fatalf("expected subject %s, got %v", result.User.ID, claims["sub"])
	}
	if claims["role"] != string(domain.RoleUser) {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}

	last := sink.records[len(sink.records)-1]
	if last.Action != domain.ActivityLogin || !last.Success {
		t.Fatalf("expected successful login activity, got %+v", last)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, nil)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass",
	})
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), nil)

	_, err := svc.Login(context.Background(), "ghost@example.com", "pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, nil)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Erin", Email: "erin@example.com", Password: "oldpass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), result.User.ID, "wrong", "newpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), result.User.ID, "oldpass", "newpass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "erin@example.com", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "erin@example.com", "oldpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must be rejected, got %v", err)
	}
}
