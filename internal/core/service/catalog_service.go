package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopgraph/catalog-api/internal/core/domain"
	"github.com/shopgraph/catalog-api/internal/core/ports"
)

// CatalogCache abstracts the list cache (Redis). A nil slice from GetList
// means the plan was not cached.
type CatalogCache interface {
	GetList(ctx context.Context, plan domain.Plan) ([]domain.Product, error)
	SetList(ctx context.Context, plan domain.Plan, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

// CatalogService implements the catalog listing and the admin-gated
// mutations. The cache is optional; all cache failures degrade to direct
// store reads.
type CatalogService struct {
	repo  ports.CatalogRepository
	cache CatalogCache
	log   zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, cache CatalogCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

// List builds a retrieval plan from the arguments and returns the matching
// products.
func (s *CatalogService) List(ctx context.Context, args domain.ListArgs) ([]domain.Product, error) {
	plan, err := BuildPlan(args)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetList(ctx, plan)
		if err != nil {
			s.log.Warn().Err(err).Msg("cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := s.repo.Find(ctx, plan)
	if err != nil {
		s.log.Error().Err(err).Msg("catalog find failed")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, plan, products); err != nil {
			s.log.Warn().Err(err).Msg("cache write failed")
		}
	}
	return products, nil
}

// Add inserts a new product. Admin only.
func (s *CatalogService) Add(ctx context.Context, ident *domain.Identity, input ports.CreateProductInput) (*domain.Product, error) {
	if err := domain.RequireAdmin(ident); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Brand:       input.Brand,
		Rating:      input.Rating,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Msg("product insert failed")
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	s.invalidateCache(ctx)
	return created, nil
}

// Update replaces the given fields of an existing product. Admin only.
func (s *CatalogService) Update(ctx context.Context, ident *domain.Identity, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := domain.RequireAdmin(ident); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Msg("product updated")
	s.invalidateCache(ctx)
	return updated, nil
}

// Delete removes a product. Admin only.
func (s *CatalogService) Delete(ctx context.Context, ident *domain.Identity, id string) error {
	if err := domain.RequireAdmin(ident); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	s.invalidateCache(ctx)
	return nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
