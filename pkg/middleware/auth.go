package middleware

import (
	"context"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// routes reachable without a session token; the report download carries its own token
var publicPaths = map[string]struct{}{
	"/v1/login":                  {},
	"/healthcheck":               {},
	"/v1/reports/sales/download": {},
}

// reportPathPrefix marks routes whose failures use the report envelope
const reportPathPrefix = "/v1/reports/"

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, r, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				unauthorized(w, r, "Bearer token is required")
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("auth: token rejected")
				unauthorized(w, r, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	if strings.HasPrefix(r.URL.Path, reportPathPrefix) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]bool{"success": false})
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidToken, message, nil)
}
