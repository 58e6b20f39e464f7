package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/moneyvault/vault-api/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
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
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	if created.ID == "" {
		created.ID = user.Username
	}
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if err := svc.Signup(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatalf("expected user to be stored")
	}
	if stored.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed, found plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), zerolog.Nop())

	if err := svc.Signup(context.Background(), "", "pw"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if err := svc.Signup(context.Background(), "alice", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if err := svc.Signup(context.Background(), "bob", "pw"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if err := svc.Signup(context.Background(), "bob", "other"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if err := svc.Signup(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if err := svc.Login(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("login with correct password failed: %v", err)
	}
}

// A wrong password for an existing user must report a credential
// failure, never a missing user.
func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	_ = svc.Signup(context.Background(), "alice", "pw1")

	if err := svc.Login(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), zerolog.Nop())

	if err := svc.Login(context.Background(), "bob", "x"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), zerolog.Nop())

	if err := svc.Login(context.Background(), "alice", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
