package api

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopgraph/catalog-api/internal/api/handler"
	"github.com/shopgraph/catalog-api/internal/api/middleware"
	"github.com/shopgraph/catalog-api/internal/core/service"
	"github.com/shopgraph/catalog-api/internal/graph"
	"github.com/shopgraph/catalog-api/internal/infrastructure/config"
	mongodb "github.com/shopgraph/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shopgraph/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with the GraphQL endpoint
// and operational routes registered. rdb may be nil; the catalog then runs
// without its list cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	creds := service.NewCredentialService(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	userRepo := mongodb.NewUserRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)

	var cache service.CatalogCache
	if rdb != nil {
		cache = redisdb.NewCatalogCache(rdb, cfg.Redis.CacheTTL)
	}

	authService := service.NewAuthService(userRepo, creds, log)
	catalogService := service.NewCatalogService(catalogRepo, cache, log)

	schema := graphql.MustParseSchema(graph.Schema, graph.NewResolver(authService, catalogService, log))

	// --- GraphQL endpoint ---
	// The identity middleware only extracts the bearer credential; guarded
	// operations enforce authorization at dispatch.
	e.POST("/graphql", echo.WrapHandler(&relay.Handler{Schema: schema}), middleware.Identity(creds))

	// --- Operational routes ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	return e
}
