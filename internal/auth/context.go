package auth

import (
	"context"

	"github.com/dukerupert/chorequest/internal/model"
)

type identityKey struct{}

// Identity is the authenticated caller, resolved once per request by the
// auth middleware and threaded explicitly into service calls.
type Identity struct {
	UserID    int64
	FamilyID  int64
	Role      model.Role
	SessionID int64
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

func (id Identity) IsParent() bool {
	return id.Role == model.RoleParent
}

type familyKey struct{}

// FamilyScope is the identity of an external API-key caller: a whole
// family acting as a service account, not an individual user.
type FamilyScope struct {
	FamilyID int64
}

func WithFamilyScope(ctx context.Context, fs FamilyScope) context.Context {
	return context.WithValue(ctx, familyKey{}, fs)
}

func FamilyScopeFromContext(ctx context.Context) (FamilyScope, bool) {
	fs, ok := ctx.Value(familyKey{}).(FamilyScope)
	return fs, ok
}
