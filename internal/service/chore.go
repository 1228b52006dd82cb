package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
)

type NewChore struct {
	Name         string
	Description  string
	Points       int
	Icon         string
	DueDate      time.Time
	AssignedToID int64
}

// CreateChore adds a pending chore to the parent's family. The family id
// is always the caller's; the assignee must belong to it.
func (s *Service) CreateChore(id auth.Identity, in NewChore) (*model.Chore, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", ErrValidation)
	}

	assignee, err := s.users.GetByID(in.AssignedToID)
	if err != nil {
		return nil, err
	}
	if assignee == nil || assignee.FamilyID != id.FamilyID {
		return nil, fmt.Errorf("%w: chores can only be assigned within your family", ErrForbidden)
	}

	createdBy := id.UserID
	chore, err := s.chores.Create(in.Name, in.Description, in.Points, in.Icon, in.DueDate, in.AssignedToID, id.FamilyID, &createdBy)
	if err != nil {
		return nil, err
	}

	s.notify(chore.FamilyID, "chore", "created", chore.ID)
	return chore, nil
}

// UpdateChore edits a pending chore. Completed chores are immutable.
func (s *Service) UpdateChore(id auth.Identity, choreID int64, in NewChore) (*model.Chore, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", ErrValidation)
	}

	chore, err := s.chores.GetByID(choreID)
	if err != nil {
		return nil, err
	}
	if chore == nil {
		return nil, ErrNotFound
	}
	if chore.FamilyID != id.FamilyID {
		return nil, ErrForbidden
	}
	if chore.IsCompleted {
		return nil, ErrAlreadyCompleted
	}

	assignee, err := s.users.GetByID(in.AssignedToID)
	if err != nil {
		return nil, err
	}
	if assignee == nil || assignee.FamilyID != id.FamilyID {
		return nil, fmt.Errorf("%w: chores can only be assigned within your family", ErrForbidden)
	}

	updated, err := s.chores.Update(choreID, in.Name, in.Description, in.Points, in.Icon, in.DueDate, in.AssignedToID)
	if err != nil {
		return nil, err
	}

	s.notify(updated.FamilyID, "chore", "updated", updated.ID)
	return updated, nil
}

func (s *Service) DeleteChore(id auth.Identity, choreID int64) error {
	chore, err := s.chores.GetByID(choreID)
	if err != nil {
		return err
	}
	if chore == nil {
		return ErrNotFound
	}
	if chore.FamilyID != id.FamilyID {
		return ErrForbidden
	}

	if err := s.chores.Delete(choreID); err != nil {
		return err
	}

	s.notify(chore.FamilyID, "chore", "deleted", choreID)
	return nil
}

// ChoresFor lists chores visible to the caller: parents see the whole
// family's, children only their own.
func (s *Service) ChoresFor(id auth.Identity) ([]model.Chore, error) {
	if id.IsParent() {
		return s.chores.ListByFamily(id.FamilyID)
	}
	return s.chores.ListByAssignee(id.UserID)
}

// ChoresForChild lists a child's chores on behalf of an API-key caller.
// The child must belong to the key's family.
func (s *Service) ChoresForChild(familyID, childID int64) ([]model.Chore, error) {
	child, err := s.users.GetByID(childID)
	if err != nil {
		return nil, err
	}
	if child == nil || child.FamilyID != familyID {
		return nil, ErrForbidden
	}
	return s.chores.ListByAssignee(childID)
}

// FamilyChores lists every chore in a family. Used by the external surface.
func (s *Service) FamilyChores(familyID int64) ([]model.Chore, error) {
	return s.chores.ListByFamily(familyID)
}

// CompleteChore transitions a chore to completed on behalf of
// actingUserID, who must be the assignee and in familyID. On success the
// chore's points are credited to the assignee (level recomputed) and
// achievement evaluation runs best-effort.
//
// Point credit happens before the result is returned; achievement
// evaluation failures are logged and never roll back the completion.
func (s *Service) CompleteChore(familyID, actingUserID, choreID int64) (*model.Chore, error) {
	chore, err := s.chores.GetByID(choreID)
	if err != nil {
		return nil, err
	}
	if chore == nil {
		return nil, ErrNotFound
	}
	if chore.FamilyID != familyID {
		return nil, ErrForbidden
	}
	if chore.AssignedToID != actingUserID {
		return nil, fmt.Errorf("%w: you can only complete chores assigned to you", ErrForbidden)
	}
	if chore.IsCompleted {
		return nil, ErrAlreadyCompleted
	}

	// Conditional update: under concurrent attempts only one request
	// observes the pending row and wins.
	ok, err := s.chores.Complete(choreID, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyCompleted
	}

	user, err := s.users.AddPoints(actingUserID, chore.Points)
	if err != nil {
		return nil, err
	}

	s.evaluateAchievements(user)
	s.notify(chore.FamilyID, "chore", "completed", choreID)

	return s.chores.GetByID(choreID)
}
