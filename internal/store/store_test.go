package store

import (
	"database/sql"
	"testing"

	"github.com/dukerupert/chorequest/internal/database"
	"github.com/dukerupert/chorequest/internal/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestFamily(t *testing.T, db *sql.DB) *model.Family {
	t.Helper()
	family, err := NewFamilyStore(db).Create("Test Family")
	if err != nil {
		t.Fatalf("create test family: %v", err)
	}
	return family
}

func createTestUser(t *testing.T, db *sql.DB, username string, role model.Role, familyID int64) *model.User {
	t.Helper()
	user, err := NewUserStore(db).Create(username, "digest.salt", username, role, familyID, "#FF0000")
	if err != nil {
		t.Fatalf("create test user %q: %v", username, err)
	}
	return user
}
