package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/moneyvault/vault-api/internal/api/metrics"
	"github.com/moneyvault/vault-api/internal/core/domain"
	"github.com/moneyvault/vault-api/internal/core/ports"
)

// AuthService implements signup and login. Passwords are stored as
// bcrypt hashes and compared in constant time; the write path relies on
// the unique username index to close the check-then-insert race.
type AuthService struct {
	repo ports.AuthRepository
	log  zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, log: log}
}

func (s *AuthService) Signup(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingFields
	}

	// Fast path for a clean 409. The unique index still catches
	// concurrent signups that slip past this check.
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("username", username).Msg("account created")
	return nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingFields
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return nil
}
