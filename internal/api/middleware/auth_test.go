package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopgraph/catalog-api/internal/core/domain"
	"github.com/shopgraph/catalog-api/internal/core/service"
)

func runIdentity(t *testing.T, verifier TokenVerifier, authHeader string) *domain.Identity {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.Identity
	handler := Identity(verifier)(func(c echo.Context) error {
		seen = domain.IdentityFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	return seen
}

func TestIdentity_ValidToken(t *testing.T) {
	creds := service.NewCredentialService("secret", time.Hour, bcrypt.MinCost)
	token, err := creds.IssueToken("u1", true)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	ident := runIdentity(t, creds, "Bearer "+token)
	if ident == nil || ident.UserID != "u1" || !ident.IsAdmin {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestIdentity_AnonymousPassThrough(t *testing.T) {
	creds := service.NewCredentialService("secret", time.Hour, bcrypt.MinCost)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
		{"missing token", "Bearer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if ident := runIdentity(t, creds, tc.header); ident != nil {
				t.Fatalf("expected anonymous request, got %+v", ident)
			}
		})
	}
}

func TestIdentity_WrongKeyIsAnonymous(t *testing.T) {
	issuer := service.NewCredentialService("other-secret", time.Hour, bcrypt.MinCost)
	verifier := service.NewCredentialService("secret", time.Hour, bcrypt.MinCost)

	token, _ := issuer.IssueToken("u1", true)
	if ident := runIdentity(t, verifier, "Bearer "+token); ident != nil {
		t.Fatalf("forged token resolved an identity: %+v", ident)
	}
}
