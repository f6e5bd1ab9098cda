package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = string(rune('a' + r.nextID))
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService() (*AuthService, *stubUserRepo, *CredentialService) {
	repo := newStubUserRepo()
	creds := NewCredentialService("secret", time.Hour, bcrypt.MinCost)
	return NewAuthService(repo, creds, testLogger()), repo, creds
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, creds := newTestAuthService()

	user, err := svc.Register(context.Background(), "alice", "pw1", false)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if !creds.VerifyPassword("pw1", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.IsAdmin {
		t.Fatalf("unexpected admin flag")
	}
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "", "pw", false); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", false); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "alice", "pw1", false); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "pw2", false); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, creds := newTestAuthService()

	if _, err := svc.Register(context.Background(), "carol", "s3cret", true); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	ident := creds.VerifyToken(token)
	if ident == nil {
		t.Fatalf("issued token did not verify")
	}
	if !ident.IsAdmin {
		t.Fatalf("admin flag lost at issuance: %+v", ident)
	}
}

func TestAuthService_Login_AdminFlagMatchesRegistration(t *testing.T) {
	svc, _, creds := newTestAuthService()

	_, _ = svc.Register(context.Background(), "alice", "pw1", false)
	token, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if ident := creds.VerifyToken(token); ident == nil || ident.IsAdmin {
		t.Fatalf("expected non-admin identity, got %+v", ident)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _ = svc.Register(context.Background(), "dave", "goodpass", false)
	if _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	created, err := svc.Register(context.Background(), "alice", "pw1", false)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.CurrentUser(context.Background(), nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for anonymous caller, got %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), &domain.Identity{UserID: created.ID})
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
