package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/api/handlers"
	"github.com/m04kA/SMC-GroomingService/internal/service/auth"
)

const msgUnauthorized = "требуется авторизация"

type usernameKey struct{}

// Auth пропускает запрос только с действующим токеном сессии в Authorization: Bearer
func Auth(authenticator Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := authenticator.Authenticate(r.Context(), handlers.BearerToken(r))
			if err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					handlers.RespondUnauthorized(w, msgUnauthorized)
					return
				}
				logger.Error("Auth middleware - session lookup failed: %v", err)
				handlers.RespondUnexpected(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext возвращает имя администратора, установленное Auth
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey{}).(string)
	return username, ok
}
