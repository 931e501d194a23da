package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/logging"
	"github.com/meetscribe/meetscribe/internal/server/models"
)

type contextKey int

const userContextKey contextKey = iota

// UserFromContext returns the authenticated user placed there by the
// Authenticator middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userContextKey).(*models.User)
	return u, ok
}

// bearerToken extracts the token from an "Authorization: Bearer X" header.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// authenticator resolves a bearer token to its user. Verification order
// matters: signature and expiry first, then token kind, then the
// revocation ledger, then user lookup. Everything downstream can rely on
// UserFromContext succeeding.
type authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
}

// Authenticator rejects requests without a valid access token and stores
// the resolved user in the request context.
func Authenticator(svc authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, common.ErrorUnauthorized)
				return
			}
			user, err := svc.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
		})
	}
}

// RequireActive rejects authenticated but not-yet-activated accounts.
func RequireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, common.ErrorUnauthorized)
			return
		}
		if !user.IsActive {
			writeError(w, common.ErrorForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperuser rejects non-administrator accounts.
func RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, common.ErrorUnauthorized)
			return
		}
		if !user.IsSuperuser {
			writeError(w, common.ErrorForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs one line per request with method, path, status and
// elapsed time.
func RequestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
