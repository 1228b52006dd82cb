package middleware

import (
	"net/http"
	"strings"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/store"
)

// APIKeyFromRequest extracts a family API key from the Authorization
// bearer token or the X-API-Key header.
func APIKeyFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if key, ok := strings.CutPrefix(h, "Bearer "); ok {
			return key
		}
	}
	return r.Header.Get("X-API-Key")
}

// RequireAPIKey authenticates the external integration surface. A valid
// key resolves to its family, which acts as a service account scoped to
// that family only; no user identity is involved.
func RequireAPIKey(families *store.FamilyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := APIKeyFromRequest(r)
			if key == "" {
				writeAuthError(w, http.StatusUnauthorized, "API key required")
				return
			}

			family, err := families.GetByAPIKey(key)
			if err != nil || family == nil {
				writeAuthError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			ctx := auth.WithFamilyScope(r.Context(), auth.FamilyScope{FamilyID: family.ID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
