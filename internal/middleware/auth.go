package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/store"
)

const SessionCookieName = "chorequest_session"

// RequireAuth validates the session cookie, loads the user, and populates
// the request context with an Identity. Decisions are re-evaluated on
// every request; nothing is cached.
func RequireAuth(sessions *store.SessionStore, users *store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeAuthError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			sess, err := sessions.GetByToken(cookie.Value)
			if err != nil || sess == nil {
				writeAuthError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := users.GetByID(sess.UserID)
			if err != nil || user == nil {
				writeAuthError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			id := auth.Identity{
				UserID:    user.ID,
				FamilyID:  user.FamilyID,
				Role:      user.RoleType,
				SessionID: sess.ID,
			}

			ctx := auth.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireParent checks that the authenticated user has the parent role.
func RequireParent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.FromContext(r.Context())
		if !ok || !id.IsParent() {
			writeAuthError(w, http.StatusForbidden, "parent access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
