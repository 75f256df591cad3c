package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/tokens"
)

type identityKey struct{}

// TokenParser интерфейс проверки access-токенов
type TokenParser interface {
	Parse(token string) (*tokens.Claims, error)
}

// Auth проверяет Bearer-токен и кладет domain.Identity в контекст запроса
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "требуется авторизация")
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, "некорректный формат заголовка Authorization")
				return
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				handlers.RespondUnauthorized(w, "недействительный токен")
				return
			}

			identity := domain.Identity{
				UserID: claims.UserID,
				Role:   domain.Role(claims.Role),
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает личность вызывающего, положенную Auth
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

// WithIdentity кладет личность в контекст (для тестов handlers)
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}
