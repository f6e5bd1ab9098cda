package ports

import (
	"context"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

// AuthService covers registration, login, and the current-user read.
type AuthService interface {
	Register(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context, ident *domain.Identity) (*domain.User, error)
}
