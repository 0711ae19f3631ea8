package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/port"
)

// Определяем кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const userClaimsKey = contextKey("userClaims")

// AuthMiddleware проверяет JWT и кладет claims пользователя в контекст.
type AuthMiddleware struct {
	tokenService port.TokenServicePort
}

func NewAuthMiddleware(tokenService port.TokenServicePort) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate - middleware для проверки JWT
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		// Извлекаем токен из заголовка Authorization
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := am.tokenService.ValidateToken(r.Context(), tokenString)
		if err != nil {
			logger.Warn("Token validation failed", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		// Добавляем информацию о пользователе в контекст запроса
		ctx := context.WithValue(r.Context(), userClaimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserClaimsFromContext достает claims, добавленные middleware Authenticate.
func UserClaimsFromContext(ctx context.Context) (*port.Claims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*port.Claims)
	return claims, ok
}
