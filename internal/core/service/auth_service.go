package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopgraph/catalog-api/internal/core/domain"
	"github.com/shopgraph/catalog-api/internal/core/ports"
)

// AuthService implements registration, login, and the current-user read.
type AuthService struct {
	users ports.UserRepository
	creds *CredentialService
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, creds *CredentialService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, creds: creds, log: log}
}

// Register creates a new account. Registration does not log the caller in;
// a credential is only issued via Login.
//
// TODO: isAdmin is caller-controlled here, which lets anyone register an
// administrator. Gate it behind an existing-admin check before exposing
// this surface publicly.
func (s *AuthService) Register(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.creds.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	// Insert enforces uniqueness atomically; a concurrent registration that
	// slipped past the lookup above still loses with ErrUserExists.
	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	if isAdmin {
		s.log.Warn().Str("username", username).Msg("account registered with admin flag")
	}
	return created, nil
}

// Login verifies the credentials and returns a signed identity token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !s.creds.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.creds.IssueToken(user.ID, user.IsAdmin)
}

// CurrentUser returns the account behind the presented identity.
func (s *AuthService) CurrentUser(ctx context.Context, ident *domain.Identity) (*domain.User, error) {
	if err := domain.RequireUser(ident); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, ident.UserID)
}
