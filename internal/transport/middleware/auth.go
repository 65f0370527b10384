package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/legends-backend/internal/domain"
	"github.com/heartmarshall/legends-backend/pkg/ctxutil"
)

// TokenValidator resolves an access token into a user id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, error)
}

type rejectedTokenKey struct{}

// Auth resolves a bearer token into a user id stored in the request context.
//
// Requests without a token, or with one the validator rejects
// (domain.ErrUnauthorized), continue anonymously so public routes keep working;
// RequireAuth reports the rejected token on gated routes. Any other validator
// failure is a 500.
func Auth(validator TokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := validator.ValidateToken(r.Context(), token)
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				ctx := context.WithValue(r.Context(), rejectedTokenKey{}, true)
				next.ServeHTTP(w, r.WithContext(ctx))
			case err != nil:
				logger.ErrorContext(r.Context(), "token validation failed",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()))
				writeDetail(w, http.StatusInternalServerError, "internal server error")
			default:
				annotateUser(w, userID)
				next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
			}
		})
	}
}

// RequireAuth rejects requests that carry no authenticated user with 401.
// It must run after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		if rejected, _ := r.Context().Value(rejectedTokenKey{}).(bool); rejected {
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			writeDetail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "Not authenticated")
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
