package auth

import (
	"context"
	"testing"

	"github.com/dukerupert/chorequest/internal/model"
)

func TestIdentityRoundTrip(t *testing.T) {
	id := Identity{UserID: 1, FamilyID: 2, Role: model.RoleParent, SessionID: 3}
	ctx := WithIdentity(context.Background(), id)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("identity not found in context")
	}
	if got != id {
		t.Errorf("got %+v, want %+v", got, id)
	}
}

func TestFromContextEmpty(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no identity in empty context")
	}
}

func TestIsParent(t *testing.T) {
	if !(Identity{Role: model.RoleParent}).IsParent() {
		t.Error("parent role should report IsParent")
	}
	if (Identity{Role: model.RoleChild}).IsParent() {
		t.Error("child role should not report IsParent")
	}
}

func TestFamilyScopeRoundTrip(t *testing.T) {
	ctx := WithFamilyScope(context.Background(), FamilyScope{FamilyID: 9})

	got, ok := FamilyScopeFromContext(ctx)
	if !ok || got.FamilyID != 9 {
		t.Fatalf("got %+v ok=%v, want family 9", got, ok)
	}

	// Identity and family scope live under separate keys.
	if _, ok := FromContext(ctx); ok {
		t.Error("family scope must not masquerade as a user identity")
	}
}
