package graph

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/shopgraph/catalog-api/internal/api/metrics"
	"github.com/shopgraph/catalog-api/internal/core/domain"
	"github.com/shopgraph/catalog-api/internal/core/ports"
)

// Resolver is the root resolver. It routes every named operation to the
// core services, resolving the caller's identity from the request context
// exactly once and passing it down explicitly.
type Resolver struct {
	auth     ports.AuthService
	catalog  ports.CatalogService
	validate *validator.Validate
	log      zerolog.Logger
}

func NewResolver(auth ports.AuthService, catalog ports.CatalogService, log zerolog.Logger) *Resolver {
	return &Resolver{
		auth:     auth,
		catalog:  catalog,
		validate: validator.New(),
		log:      log,
	}
}

// fail records the outcome and converts the error for the wire.
func (r *Resolver) fail(op string, err error) error {
	qe := r.resolveError(op, err)
	metrics.OperationsTotal.WithLabelValues(op, qe.code).Inc()
	return qe
}

func (r *Resolver) done(op string, start time.Time) {
	metrics.OperationsTotal.WithLabelValues(op, "ok").Inc()
	metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// --- Query ---

type ProductsArgs struct {
	Category *string
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
	SortBy   *string
	Limit    *int32
	Skip     *int32
}

func (r *Resolver) Products(ctx context.Context, args ProductsArgs) ([]*ProductResolver, error) {
	start := time.Now()

	products, err := r.catalog.List(ctx, toListArgs(args))
	if err != nil {
		return nil, r.fail("products", err)
	}

	resolvers := make([]*ProductResolver, 0, len(products))
	for _, p := range products {
		resolvers = append(resolvers, &ProductResolver{p: p})
	}
	r.done("products", start)
	return resolvers, nil
}

func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	start := time.Now()

	user, err := r.auth.CurrentUser(ctx, domain.IdentityFromContext(ctx))
	if err != nil {
		return nil, r.fail("me", err)
	}
	r.done("me", start)
	return &UserResolver{u: *user}, nil
}

// --- Mutation ---

type RegisterArgs struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	IsAdmin  *bool
}

func (r *Resolver) Register(ctx context.Context, args RegisterArgs) (string, error) {
	start := time.Now()

	if err := checkArgs(r.validate, args); err != nil {
		return "", r.fail("register", err)
	}

	isAdmin := args.IsAdmin != nil && *args.IsAdmin
	if _, err := r.auth.Register(ctx, args.Username, args.Password, isAdmin); err != nil {
		return "", r.fail("register", err)
	}
	r.done("register", start)
	return "user registered", nil
}

type LoginArgs struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (r *Resolver) Login(ctx context.Context, args LoginArgs) (string, error) {
	start := time.Now()

	if err := checkArgs(r.validate, args); err != nil {
		return "", r.fail("login", err)
	}

	token, err := r.auth.Login(ctx, args.Username, args.Password)
	if err != nil {
		return "", r.fail("login", err)
	}
	r.done("login", start)
	return token, nil
}

type AddProductArgs struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Description *string
	Category    *string
	Brand       *string
	Rating      *float64
}

func (r *Resolver) AddProduct(ctx context.Context, args AddProductArgs) (*ProductResolver, error) {
	start := time.Now()

	if err := checkArgs(r.validate, args); err != nil {
		return nil, r.fail("addProduct", err)
	}

	created, err := r.catalog.Add(ctx, domain.IdentityFromContext(ctx), ports.CreateProductInput{
		Name:        args.Name,
		Price:       args.Price,
		Description: args.Description,
		Category:    args.Category,
		Brand:       args.Brand,
		Rating:      args.Rating,
	})
	if err != nil {
		return nil, r.fail("addProduct", err)
	}
	r.done("addProduct", start)
	return &ProductResolver{p: *created}, nil
}

type UpdateProductArgs struct {
	ID          graphql.ID
	Name        *string
	Description *string
	Price       *float64 `validate:"omitempty,gte=0"`
	Category    *string
	Brand       *string
	Rating      *float64
}

func (r *Resolver) UpdateProduct(ctx context.Context, args UpdateProductArgs) (*ProductResolver, error) {
	start := time.Now()

	if err := checkArgs(r.validate, args); err != nil {
		return nil, r.fail("updateProduct", err)
	}

	patch := domain.ProductPatch{
		Name:        args.Name,
		Description: args.Description,
		Price:       args.Price,
		Category:    args.Category,
		Brand:       args.Brand,
		Rating:      args.Rating,
	}

	updated, err := r.catalog.Update(ctx, domain.IdentityFromContext(ctx), string(args.ID), patch)
	if err != nil {
		return nil, r.fail("updateProduct", err)
	}
	r.done("updateProduct", start)
	return &ProductResolver{p: *updated}, nil
}

type DeleteProductArgs struct {
	ID graphql.ID
}

func (r *Resolver) DeleteProduct(ctx context.Context, args DeleteProductArgs) (string, error) {
	start := time.Now()

	if err := r.catalog.Delete(ctx, domain.IdentityFromContext(ctx), string(args.ID)); err != nil {
		return "", r.fail("deleteProduct", err)
	}
	r.done("deleteProduct", start)
	return "product deleted", nil
}

func toListArgs(args ProductsArgs) domain.ListArgs {
	out := domain.ListArgs{
		Category: args.Category,
		Brand:    args.Brand,
		MinPrice: args.MinPrice,
		MaxPrice: args.MaxPrice,
		SortBy:   args.SortBy,
	}
	if args.Skip != nil {
		skip := int64(*args.Skip)
		out.Skip = &skip
	}
	if args.Limit != nil {
		limit := int64(*args.Limit)
		out.Limit = &limit
	}
	return out
}

// --- Field resolvers ---

// ProductResolver exposes a single product to the schema.
type ProductResolver struct {
	p domain.Product
}

func (r *ProductResolver) ID() graphql.ID       { return graphql.ID(r.p.ID) }
func (r *ProductResolver) Name() string         { return r.p.Name }
func (r *ProductResolver) Description() *string { return r.p.Description }
func (r *ProductResolver) Price() float64       { return r.p.Price }
func (r *ProductResolver) Category() *string    { return r.p.Category }
func (r *ProductResolver) Brand() *string       { return r.p.Brand }
func (r *ProductResolver) Rating() *float64     { return r.p.Rating }

// UserResolver exposes an account to the schema. The password hash is not
// reachable from any field.
type UserResolver struct {
	u domain.User
}

func (r *UserResolver) ID() graphql.ID   { return graphql.ID(r.u.ID) }
func (r *UserResolver) Username() string { return r.u.Username }
func (r *UserResolver) IsAdmin() bool    { return r.u.IsAdmin }
