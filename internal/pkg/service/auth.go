package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("token is not valid")

type tokenClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

type AuthService struct {
	secret   []byte
	tokenExp time.Duration
}

func NewAuthService(secret string, tokenExp time.Duration) *AuthService {
	return &AuthService{secret: []byte(secret), tokenExp: tokenExp}
}

func (as *AuthService) GenerateToken(ctx context.Context, sessionID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(as.tokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		SessionID: sessionID,
	})

	return token.SignedString(as.secret)
}

func (as *AuthService) ParseToken(ctx context.Context, tokenGot string) (string, error) {
	var claims tokenClaims

	token, err := jwt.ParseWithClaims(tokenGot, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("invalid signing method: %v", t.Header["alg"])
			}
			return as.secret, nil
		})

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}

	return claims.SessionID, nil
}
