package domain

import "context"

// Identity is the request-scoped result of verifying a bearer credential.
// It is derived once per request and never persisted or shared.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// RequireUser fails unless an identity is present.
func RequireUser(ident *Identity) error {
	if ident == nil {
		return ErrUnauthorized
	}
	return nil
}

// RequireAdmin fails unless an identity is present and carries the admin
// flag. Anonymous and authenticated-but-non-admin callers get the identical
// error so responses never reveal whether an account exists.
func RequireAdmin(ident *Identity) error {
	if ident == nil || !ident.IsAdmin {
		return ErrUnauthorized
	}
	return nil
}

type identityCtxKey struct{}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, ident)
}

// IdentityFromContext extracts the identity resolved for this request, or
// nil when the caller is anonymous.
func IdentityFromContext(ctx context.Context) *Identity {
	ident, _ := ctx.Value(identityCtxKey{}).(*Identity)
	return ident
}
