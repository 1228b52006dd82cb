package service

import (
	"fmt"
	"strings"

	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
)

type NewReward struct {
	Name        string
	Description string
	PointsCost  int
	Icon        string
}

// CreateReward adds a reward to the parent's family catalog.
func (s *Service) CreateReward(id auth.Identity, in NewReward) (*model.Reward, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.PointsCost <= 0 {
		return nil, fmt.Errorf("%w: pointsCost must be positive", ErrValidation)
	}

	reward, err := s.rewards.Create(in.Name, in.Description, in.PointsCost, in.Icon, id.FamilyID)
	if err != nil {
		return nil, err
	}

	s.notify(reward.FamilyID, "reward", "created", reward.ID)
	return reward, nil
}

// UpdateReward edits a reward. Cost changes never touch past redemptions,
// which carry their own points snapshot.
func (s *Service) UpdateReward(id auth.Identity, rewardID int64, in NewReward, available bool) (*model.Reward, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.PointsCost <= 0 {
		return nil, fmt.Errorf("%w: pointsCost must be positive", ErrValidation)
	}

	reward, err := s.rewards.GetByID(rewardID)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, ErrNotFound
	}
	if reward.FamilyID != id.FamilyID {
		return nil, ErrForbidden
	}

	updated, err := s.rewards.Update(rewardID, in.Name, in.Description, in.PointsCost, in.Icon, available)
	if err != nil {
		return nil, err
	}

	s.notify(updated.FamilyID, "reward", "updated", updated.ID)
	return updated, nil
}

func (s *Service) DeleteReward(id auth.Identity, rewardID int64) error {
	reward, err := s.rewards.GetByID(rewardID)
	if err != nil {
		return err
	}
	if reward == nil {
		return ErrNotFound
	}
	if reward.FamilyID != id.FamilyID {
		return ErrForbidden
	}

	if err := s.rewards.Delete(rewardID); err != nil {
		return err
	}

	s.notify(reward.FamilyID, "reward", "deleted", rewardID)
	return nil
}

// RewardsFor lists the available rewards of the caller's family.
func (s *Service) RewardsFor(id auth.Identity) ([]model.Reward, error) {
	return s.rewards.ListAvailableByFamily(id.FamilyID)
}

// RedeemReward spends the caller's points on a reward from their own
// family. Points are debited immediately — before approval — so a child
// cannot double-spend a balance while a redemption is pending. The
// redemption snapshots the cost at this moment.
func (s *Service) RedeemReward(id auth.Identity, rewardID int64) (*model.Redemption, error) {
	user, err := s.users.GetByID(id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	reward, err := s.rewards.GetByID(rewardID)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, ErrNotFound
	}
	if reward.FamilyID != user.FamilyID {
		return nil, fmt.Errorf("%w: you can only redeem rewards from your own family", ErrForbidden)
	}

	if user.Points < reward.PointsCost {
		return nil, fmt.Errorf("%w: %d points needed, %d available", ErrInsufficientPoints, reward.PointsCost, user.Points)
	}

	redemption, err := s.redemptions.Create(user.ID, reward.ID, reward.PointsCost)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.AddPoints(user.ID, -reward.PointsCost); err != nil {
		return nil, err
	}

	s.notify(user.FamilyID, "redemption", "created", redemption.ID)
	return redemption, nil
}

// RedemptionsFor lists redemptions visible to the caller: parents see the
// whole family's (pending first), children their own.
func (s *Service) RedemptionsFor(id auth.Identity) ([]model.Redemption, error) {
	if id.IsParent() {
		return s.redemptions.ListByFamily(id.FamilyID)
	}
	return s.redemptions.ListByUser(id.UserID)
}

// ApproveRedemption marks a pending redemption approved. The redeeming
// user must belong to the acting parent's family. Points were already
// debited at redemption time, so approval has no point side-effects.
func (s *Service) ApproveRedemption(id auth.Identity, redemptionID int64) (*model.Redemption, error) {
	redemption, err := s.redemptions.GetByID(redemptionID)
	if err != nil {
		return nil, err
	}
	if redemption == nil {
		return nil, ErrNotFound
	}

	redeemer, err := s.users.GetByID(redemption.UserID)
	if err != nil {
		return nil, err
	}
	if redeemer == nil || redeemer.FamilyID != id.FamilyID {
		return nil, ErrForbidden
	}

	if redemption.IsApproved {
		return nil, ErrAlreadyApproved
	}

	ok, err := s.redemptions.Approve(redemptionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyApproved
	}

	s.notify(redeemer.FamilyID, "redemption", "approved", redemptionID)
	return s.redemptions.GetByID(redemptionID)
}
