package ports

import (
	"context"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

// CatalogRepository defines the contract the resolver engine expects from
// the product store. Not-found conditions surface as domain.ErrProductNotFound;
// any other error is a transient storage failure.
type CatalogRepository interface {
	Find(ctx context.Context, plan domain.Plan) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateByID(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
