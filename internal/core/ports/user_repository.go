package ports

import (
	"context"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence. Insert must
// enforce username uniqueness atomically and return domain.ErrUserExists on
// a duplicate, so a race between two registrations yields exactly one winner.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
