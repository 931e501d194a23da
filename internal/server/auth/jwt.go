// Package auth issues and verifies the signed bearer tokens used by the
// server. Tokens are HS256 JWTs carrying the subject username, a token
// kind (access or refresh) and an absolute expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/meetscribe/meetscribe/internal/common"
)

// TokenKind tells access tokens and refresh tokens apart. The kind is
// embedded in the signed payload, so an access token can never pass for a
// refresh token or vice versa.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the claim set for both token kinds. Subject carries the
// username.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type"`
}

// GenerateToken signs a token of the given kind for subject, expiring
// validityDuration from now.
func GenerateToken(subject string, kind TokenKind, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		TokenType: string(kind),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns
// its subject and kind. Expiry and tampering are distinct failures:
// a well-formed but expired token yields common.ErrTokenExpired, anything
// structurally or cryptographically invalid yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (string, TokenKind, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", common.ErrTokenExpired
		}
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.Subject, TokenKind(claims.TokenType), nil
}
