package graph

import (
	"errors"

	"github.com/shopgraph/catalog-api/internal/core/domain"
)

const (
	codeUnauthorized       = "UNAUTHORIZED"
	codeConflict           = "CONFLICT"
	codeNotFound           = "NOT_FOUND"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeBadUserInput       = "BAD_USER_INPUT"
	codeInternal           = "INTERNAL"
)

// queryError is surfaced to the caller with a stable machine-readable code
// in the error extensions.
type queryError struct {
	msg  string
	code string
}

func newQueryError(msg, code string) *queryError {
	return &queryError{msg: msg, code: code}
}

func (e *queryError) Error() string { return e.msg }

// Extensions satisfies the resolver-error contract of the GraphQL engine.
func (e *queryError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// resolveError maps domain failures to typed GraphQL errors. Anything
// outside the known taxonomy is logged with its cause and collapsed to an
// opaque internal failure so storage details never reach the caller.
func (r *Resolver) resolveError(op string, err error) *queryError {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return newQueryError("unauthorized", codeUnauthorized)
	case errors.Is(err, domain.ErrUserExists):
		return newQueryError("user already exists", codeConflict)
	case errors.Is(err, domain.ErrUserNotFound):
		return newQueryError("user not found", codeNotFound)
	case errors.Is(err, domain.ErrProductNotFound):
		return newQueryError("product not found", codeNotFound)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return newQueryError("invalid credentials", codeInvalidCredentials)
	case errors.Is(err, domain.ErrInvalidArgument):
		return newQueryError(err.Error(), codeBadUserInput)
	}

	r.log.Error().Err(err).Str("operation", op).Msg("unhandled resolver error")
	return newQueryError("internal server error", codeInternal)
}
