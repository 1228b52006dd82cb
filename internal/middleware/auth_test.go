package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/database"
	"github.com/dukerupert/chorequest/internal/model"
	"github.com/dukerupert/chorequest/internal/store"
)

type authFixture struct {
	sessions *store.SessionStore
	users    *store.UserStore
	families *store.FamilyStore
	family   *model.Family
	parent   *model.User
	child    *model.User
}

func setupAuth(t *testing.T) *authFixture {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	families := store.NewFamilyStore(db)
	users := store.NewUserStore(db)
	family, err := families.Create("Test Family")
	if err != nil {
		t.Fatalf("create family: %v", err)
	}
	parent, err := users.Create("parent", "digest.salt", "Parent", model.RoleParent, family.ID, "")
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}
	child, err := users.Create("child", "digest.salt", "Child", model.RoleChild, family.ID, "")
	if err != nil {
		t.Fatalf("create child: %v", err)
	}
	return &authFixture{
		sessions: store.NewSessionStore(db),
		users:    users,
		families: families,
		family:   family,
		parent:   parent,
		child:    child,
	}
}

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	f := setupAuth(t)
	handler := RequireAuth(f.sessions, f.users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/chores", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthRejectsUnknownToken(t *testing.T) {
	f := setupAuth(t)
	handler := RequireAuth(f.sessions, f.users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/api/chores", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthPopulatesIdentity(t *testing.T) {
	f := setupAuth(t)
	sess, err := f.sessions.Create(f.parent.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	var got auth.Identity
	handler := RequireAuth(f.sessions, f.users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/chores", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.Token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.UserID != f.parent.ID || got.FamilyID != f.family.ID || got.Role != model.RoleParent {
		t.Errorf("identity = %+v, want parent of family %d", got, f.family.ID)
	}
	if got.SessionID != sess.ID {
		t.Errorf("session id = %d, want %d", got.SessionID, sess.ID)
	}
}

func TestRequireParent(t *testing.T) {
	f := setupAuth(t)
	var ran bool
	handler := RequireParent(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	}))

	// Child identity is refused.
	req := httptest.NewRequest("POST", "/api/chores", nil)
	ctx := auth.WithIdentity(req.Context(), auth.Identity{UserID: f.child.ID, FamilyID: f.family.ID, Role: model.RoleChild})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	if rec.Code != http.StatusForbidden {
		t.Errorf("child status = %d, want 403", rec.Code)
	}
	if ran {
		t.Error("handler ran for child")
	}

	// Parent identity passes.
	req = httptest.NewRequest("POST", "/api/chores", nil)
	ctx = auth.WithIdentity(req.Context(), auth.Identity{UserID: f.parent.ID, FamilyID: f.family.ID, Role: model.RoleParent})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	if rec.Code != http.StatusOK {
		t.Errorf("parent status = %d, want 200", rec.Code)
	}
	if !ran {
		t.Error("handler did not run for parent")
	}
}

func TestRequireParentWithoutIdentity(t *testing.T) {
	handler := RequireParent(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/chores", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
