package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ank17jaat/SpaceMate/internal/contextkeys"
	"github.com/ank17jaat/SpaceMate/internal/core/domain"
	"github.com/ank17jaat/SpaceMate/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService - реализация TokenServicePort для JWT.
// Сервис только проверяет токены: учетные записи живут у внешнего
// провайдера, нам достаточно подписи и claims.
type TokenService struct {
	// Секретный ключ для подписи токенов. Хранится в конфиге.
	signingKey []byte
}

func NewTokenService(signingKey string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenService{signingKey: []byte(signingKey)}, nil
}

// jwtCustomClaims - это наша реализация стандартных claims JWT.
type jwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken создает новый JWT токен. Используется утилитами и тестами:
// в проде токены выпускает провайдер аутентификации.
func (s *TokenService) GenerateToken(ctx context.Context, userID, email string, ttl time.Duration) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"user_id":   userID,
	})

	claims := &jwtCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "spacemate",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken проверяет токен.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*port.Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	serviceLogger := logger.WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем, что метод подписи - HS256, как мы и ожидали
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			alg := token.Header["alg"]
			serviceLogger.Error("Unexpected signing method detected", fmt.Errorf("algorithm %v is not HS256", alg), port.Fields{"algorithm": alg})
			return nil, fmt.Errorf("unexpected signing method: %v", alg)
		}
		return s.signingKey, nil
	})

	if err != nil {
		// Проверяем, была ли ошибка ИМЕННО из-за истечения срока
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Здесь token.Valid будет false, но claims можно прочитать
			if claims, ok := token.Claims.(*jwtCustomClaims); ok {
				serviceLogger.Warn("Token has expired", port.Fields{"user_id": claims.UserID, "email": claims.Email})
			} else {
				serviceLogger.Warn("An expired token could not be parsed to claims", nil)
			}
		} else {
			// Это была другая ошибка (например, подделка подписи)
			serviceLogger.Error("Invalid token format or signature", err, nil)
		}
		return nil, domain.ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*jwtCustomClaims); ok && token.Valid {
		serviceLogger.Debug("Token validated successfully.", port.Fields{
			"user_id": claims.UserID,
			"email":   claims.Email,
		})

		return &port.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
		}, nil
	}

	serviceLogger.Error("Token was parsed without error, but claims type assertion failed", nil, nil)
	return nil, domain.ErrTokenInvalid
}
