package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bloggers/bloggers-api/internal/crypto"
	"github.com/bloggers/bloggers-api/internal/metrics"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID string
}

type identityKey struct{}

// TokenVerifier verifies an access token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (crypto.Claims, error)
}

// BearerAuth returns middleware that requires a valid Bearer token in the
// Authorization header. Every failure is an empty 401; expired and malformed
// tokens are indistinguishable to the caller.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				reject(w, r, "bearer", "missing")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				slog.Debug("bearer token rejected", "path", r.URL.Path, "error", err)
				reject(w, r, "bearer", "invalid")
				return
			}

			ctx := WithIdentity(r.Context(), Identity{UserID: claims.UserID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

func reject(w http.ResponseWriter, r *http.Request, gate, reason string) {
	metrics.AuthRejectionsTotal.WithLabelValues(gate, reason).Inc()
	slog.Warn("authentication failed",
		"gate", gate,
		"reason", reason,
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
	)
	w.WriteHeader(http.StatusUnauthorized)
}
