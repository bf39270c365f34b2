package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/service"
)

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

const authCookie = "Authorization"

func GetSessionID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(sessionIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func AuthenticateMiddleware(authService service.Authorization) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string

			cookie, err := r.Cookie(authCookie)
			if err == nil {
				token = cookie.Value
			} else {
				authHeader := r.Header.Get("Authorization")
				if strings.HasPrefix(authHeader, "Bearer ") {
					token = strings.TrimPrefix(authHeader, "Bearer ")
				}
			}

			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			sessionID, err := authService.ParseToken(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
