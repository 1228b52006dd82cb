package service

import (
	"fmt"
	"strings"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
)

// CreateFamily bootstraps a new tenant with a generated API key.
func (s *Service) CreateFamily(name string) (*model.Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.families.Create(name)
}

type NewUser struct {
	Username    string
	Password    string
	DisplayName string
	RoleType    model.Role
	FamilyID    int64
	AvatarColor string
}

// CreateUser registers a family member. The password is hashed before it
// reaches the store; the plaintext is never persisted.
func (s *Service) CreateUser(in NewUser) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.DisplayName = strings.TrimSpace(in.DisplayName)

	switch {
	case in.Username == "":
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	case in.Password == "":
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	case in.DisplayName == "":
		return nil, fmt.Errorf("%w: displayName is required", ErrValidation)
	case !in.RoleType.Valid():
		return nil, fmt.Errorf("%w: roleType must be parent or child", ErrValidation)
	}

	family, err := s.families.GetByID(in.FamilyID)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, fmt.Errorf("%w: family does not exist", ErrValidation)
	}

	existing, err := s.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username is taken", ErrValidation)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(in.Username, hash, in.DisplayName, in.RoleType, in.FamilyID, in.AvatarColor)
	if err != nil {
		return nil, err
	}

	s.notify(user.FamilyID, "member", "joined", user.ID)
	return user, nil
}

// GetFamily returns the caller's own family. Any other family id fails
// with ErrForbidden regardless of whether it exists, so probes cannot
// distinguish foreign tenants from absent ones.
func (s *Service) GetFamily(id auth.Identity, familyID int64) (*model.Family, error) {
	if familyID != id.FamilyID {
		return nil, ErrForbidden
	}
	family, err := s.families.GetByID(familyID)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, ErrNotFound
	}
	return family, nil
}

// FamilyMembers lists the members of the caller's own family.
func (s *Service) FamilyMembers(id auth.Identity, familyID int64) ([]model.User, error) {
	if familyID != id.FamilyID {
		return nil, ErrForbidden
	}
	return s.users.ListByFamily(familyID)
}
