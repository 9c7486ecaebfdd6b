package middleware

import (
	"context"
	"net/http"
	"strings"

	"inkwell/internal/common"
	"inkwell/internal/domain/repository"
)

type contextKey string

const (
	UserIDCtxKey contextKey = "userID"
	TokenCtxKey  contextKey = "token"
)

// Authenticator is the guard applied to every protected route: it requires
// an "Authorization: Bearer <token>" header, resolves the token against the
// session store and injects the owning user id into the request context.
// Expiry recorded on the session is not checked here; a token stays valid
// until logout.
func Authenticator(sessions repository.SessionRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			session, err := sessions.Find(r.Context(), token)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "User not logged in.")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, session.UserID)
			ctx = context.WithValue(ctx, TokenCtxKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok
}
