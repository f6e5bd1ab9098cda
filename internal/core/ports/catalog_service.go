package ports

import (
	"context"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

// CreateProductInput carries the fields of a new catalog item.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description *string
	Category    *string
	Brand       *string
	Rating      *float64
}

// CatalogService covers the catalog read and the admin-gated mutations.
// Every mutation takes the caller's identity explicitly.
type CatalogService interface {
	List(ctx context.Context, args domain.ListArgs) ([]domain.Product, error)
	Add(ctx context.Context, ident *domain.Identity, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, ident *domain.Identity, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, ident *domain.Identity, id string) error
}
