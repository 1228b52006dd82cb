package store

import (
	"testing"
	"time"

	"github.com/dukerupert/chorequest/internal/model"
)

func TestSessionCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	user := createTestUser(t, db, "alice", model.RoleParent, family.ID)
	ss := NewSessionStore(db)

	sess, err := ss.Create(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(sess.Token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(sess.Token))
	}
	if sess.ExpiresAt.Before(time.Now().Add(23 * time.Hour)) {
		t.Errorf("expires_at %v too soon", sess.ExpiresAt)
	}

	got, err := ss.GetByToken(sess.Token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if got == nil || got.UserID != user.ID {
		t.Fatalf("got %+v, want session for user %d", got, user.ID)
	}

	missing, err := ss.GetByToken("bogus")
	if err != nil {
		t.Fatalf("get unknown token: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown token")
	}
}

func TestSessionExpiry(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	user := createTestUser(t, db, "alice", model.RoleParent, family.ID)
	ss := NewSessionStore(db)

	sess, err := ss.Create(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	// Force the session into the past.
	if _, err := db.Exec(`UPDATE sessions SET expires_at = ? WHERE id = ?`,
		time.Now().UTC().Add(-time.Minute), sess.ID); err != nil {
		t.Fatalf("expire session: %v", err)
	}

	got, err := ss.GetByToken(sess.Token)
	if err != nil {
		t.Fatalf("get expired token: %v", err)
	}
	if got != nil {
		t.Error("expected nil for expired session")
	}

	n, err := ss.DeleteExpired()
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d sessions, want 1", n)
	}
}

func TestSessionDelete(t *testing.T) {
	db := openTestDB(t)
	family := createTestFamily(t, db)
	user := createTestUser(t, db, "alice", model.RoleParent, family.ID)
	ss := NewSessionStore(db)

	sess, err := ss.Create(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := ss.Delete(sess.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	got, err := ss.GetByToken(sess.Token)
	if err != nil {
		t.Fatalf("get deleted session: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}
