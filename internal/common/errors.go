// Package common defines shared constants and sentinel errors used across
// the meetscribe server layers. Callers should use errors.Is to match
// these values; they are translated to transport status codes only at the
// HTTP boundary.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Token lifecycle errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenRevoked   = errors.New("token revoked")
	ErrWrongTokenType = errors.New("wrong token type")

	// Lineage-specific errors.
	ErrNoSourceText = errors.New("no text available to translate")

	// Admin errors.
	ErrSelfStatusChange = errors.New("cannot modify your own status")

	// External collaborator errors (AI gateway, object storage).
	ErrUpstreamFailure = errors.New("upstream failure")
)
