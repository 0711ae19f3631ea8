package port

import "context"

// Claims - проверенная личность вызывающего. UserID - непрозрачный
// идентификатор внешнего auth-провайдера, мы ему доверяем как есть.
type Claims struct {
	UserID string
	Email  string
}

// TokenServicePort - контракт проверки токена личности.
type TokenServicePort interface {
	// ValidateToken проверяет токен и возвращает claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
