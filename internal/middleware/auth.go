package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hyperionhq/hyperion/internal/models"
	"github.com/hyperionhq/hyperion/internal/utils"
)

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (models.User, error)
}

type ctxKey string

const ctxUserKey ctxKey = "user"

// UserFromContext returns the authenticated user stored by Auth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ctxUserKey).(models.User)
	return user, ok
}

// Auth guards a route group behind bearer token authentication. The
// resolved user is pushed into the request context.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				unauthorized(w, "not authenticated")
				return
			}

			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				unauthorized(w, "not authenticated")
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				unauthorized(w, "not authenticated")
				return
			}

			user, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				unauthorized(w, "could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.JSONError(w, http.StatusUnauthorized, msg)
}
