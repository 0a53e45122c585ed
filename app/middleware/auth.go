package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "alumnet/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct {
	Signer   *jwtutil.Signer
	Denylist *jwtutil.Denylist
}

// RequireAuth accepts the access token from the accessToken cookie or a
// Bearer header, rejecting revoked or invalid tokens.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := accessToken(r)
		if token == "" {
			unauthorized(w)
			return
		}
		claims, err := a.Signer.ParseAccess(token)
		if err != nil {
			unauthorized(w)
			return
		}
		if a.Denylist.Revoked(r.Context(), claims.ID) {
			unauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"statusCode":401,"data":null,"message":"unauthorized"}`))
}

func accessToken(r *http.Request) string {
	if c, err := r.Cookie("accessToken"); err == nil && c.Value != "" {
		return c.Value
	}
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	return ""
}
