package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/alphapoints/platform/pkg/utils"
)

type ContextKey string

const (
	CapabilityIDKey   ContextKey = "capabilityID"
	CapabilityKindKey ContextKey = "capabilityKind"
)

// CapabilityMiddleware requires a bearer token minted from a capability
// secret. It only establishes which capability the caller claims to hold; the
// registry lookup that makes the claim good happens in the handler.
func CapabilityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), CapabilityIDKey, claims.CapabilityID)
		ctx = context.WithValue(ctx, CapabilityKindKey, claims.Kind)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
