package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// CredentialService hashes and verifies passwords and issues and verifies
// signed identity tokens. The signing key is process-wide configuration,
// fixed at construction.
//
// Claims are trusted for the full token lifetime: verification never
// re-reads the account record, so an admin-flag change only takes effect
// once previously issued tokens expire.
type CredentialService struct {
	secret []byte
	ttl    time.Duration
	cost   int
}

func NewCredentialService(secret string, ttl time.Duration, cost int) *CredentialService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialService{secret: []byte(secret), ttl: ttl, cost: cost}
}

// HashPassword returns a salted one-way hash of the plaintext.
func (s *CredentialService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func (s *CredentialService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken produces a signed credential for the given account, expiring
// after the configured TTL.
func (s *CredentialService) IssueToken(userID string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// VerifyToken resolves a presented credential into an identity. It returns
// nil for malformed, expired, and signature-invalid tokens alike; callers
// treat all three the same as "no credential presented", and the reason is
// never reported.
func (s *CredentialService) VerifyToken(token string) *domain.Identity {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}
	isAdmin, _ := claims["is_admin"].(bool)

	return &domain.Identity{UserID: sub, IsAdmin: isAdmin}
}
