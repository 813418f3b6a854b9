package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/propside/backoffice/internal/utils"
)

type contextKey string

const ContextKeyAuth = contextKey("authContext")

// Middleware validates the bearer token and stores the resulting
// auth.Context on the request. Missing or invalid tokens return 401.
func Middleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractBearerToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			claims, vErr := ValidateToken(tokenStr, secretKey)
			if vErr != nil {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			actx := &Context{
				UserID:         claims.UserID,
				Role:           claims.Role,
				OrganizationID: claims.OrganizationID,
				EntityIDs:      claims.EntityIDs,
				PropertyIDs:    claims.PropertyIDs,
			}

			ctx := context.WithValue(r.Context(), ContextKeyAuth, actx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromRequest pulls the auth context stored by Middleware. Nil when the
// handler is reached without the middleware (programming error).
func FromRequest(r *http.Request) *Context {
	actx, _ := r.Context().Value(ContextKeyAuth).(*Context)
	return actx
}

func extractBearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
