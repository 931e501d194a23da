// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, token refresh, logout and
// the bearer-token authentication gate, plus the admin account operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/dbx"
	"github.com/meetscribe/meetscribe/internal/server/auth"
	"github.com/meetscribe/meetscribe/internal/server/config"
	"github.com/meetscribe/meetscribe/internal/server/models"
	"github.com/meetscribe/meetscribe/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
// - Register: create accounts (inactive until approved)
// - Login: verify credentials and mint tokens
// - Refresh: mint a new access token for a still-valid refresh token
// - Logout: record the presented token in the revocation ledger
// - Authenticate: resolve a bearer access token to its user
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new, inactive user account. A username or email that
// is already taken yields common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, username, email, password, fullName string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		FullName:       fullName,
		HashedPassword: string(hashed),
		IsActive:       false,
		IsSuperuser:    false,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a new TokenPair.
// An unknown username and a wrong password are indistinguishable to the
// caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(user.Username)
}

// Refresh validates a refresh token and mints a fresh access token. The
// refresh token itself is returned unchanged; it stays valid until it
// expires or is revoked. Tokens recorded in the revocation ledger are
// rejected even when cryptographically valid.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	subject, kind, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if kind != auth.TokenKindRefresh {
		return nil, common.ErrWrongTokenType
	}

	revoked, err := s.repomanager.RevokedTokens(s.db).Exists(ctx, refreshToken)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if revoked {
		return nil, common.ErrTokenRevoked
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	access, err := auth.GenerateToken(user.Username, auth.TokenKindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Logout records the presented token in the revocation ledger. The token
// must still decode; revoking is idempotent, so logging out twice with the
// same token succeeds.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if _, _, err := auth.ParseToken(token, s.jwtSecret); err != nil {
		return err
	}
	if err := s.repomanager.RevokedTokens(s.db).Add(ctx, token); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// Authenticate resolves a bearer access token to the user it was issued
// for. Refresh tokens, revoked tokens, and tokens whose subject no longer
// exists are all rejected.
func (s *UserService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	subject, kind, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if kind != auth.TokenKindAccess {
		return nil, common.ErrWrongTokenType
	}

	revoked, err := s.repomanager.RevokedTokens(s.db).Exists(ctx, accessToken)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if revoked {
		return nil, common.ErrTokenRevoked
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// ListUsers returns a page of accounts, newest-first.
func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx, skip, limit)
}

// UpdateUserStatus activates or deactivates the target account. An
// administrator changing their own status is refused with
// common.ErrSelfStatusChange.
func (s *UserService) UpdateUserStatus(ctx context.Context, actorID, targetID string, active bool) (*models.User, error) {
	if actorID == targetID {
		return nil, common.ErrSelfStatusChange
	}

	var updated *models.User
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if _, err := repo.GetByID(ctx, targetID); err != nil {
			return err
		}
		u, err := repo.UpdateActive(ctx, targetID, active)
		if err != nil {
			return err
		}
		updated = u
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// --- helpers below ---

func (s *UserService) generateTokenPair(username string) (*TokenPair, error) {
	access, err := auth.GenerateToken(username, auth.TokenKindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateToken(username, auth.TokenKindRefresh, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
