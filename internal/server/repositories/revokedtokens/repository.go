// Package revokedtokens provides the revocation ledger: an append-only
// blacklist of refresh token strings.
package revokedtokens

import "context"

type Repository interface {
	// Add records the token string as revoked. Adding a token that is
	// already present is not an error.
	Add(ctx context.Context, token string) error
	// Exists reports whether the exact token string has been revoked.
	Exists(ctx context.Context, token string) (bool, error)
}
