package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/pkg/cryptox"
	"github.com/dietlens/platescan/pkg/slogx"
)

var (
	ErrInvalidRegistration  = errors.New("invalid registration request")
	ErrUsernameAlreadyTaken = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
)

// UserService owns account creation and credential verification.
type UserService struct {
	Store store.Store
}

// Register creates a new account. The username is checked for
// availability first; a concurrent duplicate that slips past the check
// loses to the primary-key constraint and is reported the same way.
func (s *UserService) Register(
	ctx context.Context,
	username, name, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if username == "" || name == "" || password == "" {
		return domain.User{}, ErrInvalidRegistration
	}

	// 1. Verify username is available.
	_, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err == nil {
		log.Warn("registration attempted with already-taken username",
			slog.String("username", username),
		)
		return domain.User{}, ErrUsernameAlreadyTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check username availability", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Hash the password. The plaintext goes no further than this call.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Insert the row; the PK constraint settles check-then-insert races.
	user := domain.User{
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("lost duplicate-registration race",
				slog.String("username", username),
			)
			return domain.User{}, ErrUsernameAlreadyTaken
		}
		log.Error("failed to create user",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("username", username))
	return user, nil
}

// GetUser fetches a user by username.
func (s *UserService) GetUser(ctx context.Context, username string) (domain.User, error) {
	return s.Store.Users().GetUserByUsername(ctx, username)
}

// VerifyPassword reports whether password matches the stored hash for
// username. An unknown user yields false, never an error, so callers
// cannot distinguish the two cases.
func (s *UserService) VerifyPassword(ctx context.Context, username, password string) bool {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		return false
	}
	return cryptox.VerifyPassword(password, user.PasswordHash)
}

// Authenticate is the login path: it returns the user row on success and
// ErrInvalidCredentials otherwise.
func (s *UserService) Authenticate(
	ctx context.Context,
	username, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to load user for login", slog.Any("error", err))
		return domain.User{}, err
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		log.Warn("login failed", slog.String("username", username))
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}
