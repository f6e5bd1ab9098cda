package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

// TokenVerifier resolves a bearer credential into an identity, or nil when
// the credential is absent, malformed, expired, or signature-invalid.
type TokenVerifier interface {
	VerifyToken(token string) *domain.Identity
}

// Identity resolves the bearer credential and stores the identity on the
// request context. An unverifiable credential leaves the request anonymous;
// this middleware never rejects, since public operations accept anonymous
// callers and guarded ones fail at dispatch.
func Identity(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			if ident := verifier.VerifyToken(parts[1]); ident != nil {
				req := c.Request()
				c.SetRequest(req.WithContext(domain.WithIdentity(req.Context(), ident)))
			}
			return next(c)
		}
	}
}
