package service

import (
	"time"

	"github.com/dukerupert/chorequest/internal/achievement"
	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
)

// evaluateAchievements runs the achievement rules for a user and awards
// anything newly earned. Best-effort: failures are logged, never
// propagated, so a broken evaluation cannot fail the chore completion or
// point change that triggered it.
func (s *Service) evaluateAchievements(user *model.User) {
	completed, err := s.chores.ListCompletedByAssignee(user.ID)
	if err != nil {
		s.logger.Error("achievement evaluation: list completions", "user_id", user.ID, "error", err)
		return
	}

	for _, name := range achievement.Evaluate(completed, user.Points, time.Now()) {
		entry, err := s.achievements.GetByName(name)
		if err != nil {
			s.logger.Error("achievement evaluation: lookup", "name", name, "error", err)
			continue
		}
		if entry == nil {
			// Catalog entry missing — seeding skipped or renamed. Not fatal.
			s.logger.Warn("achievement not in catalog", "name", name)
			continue
		}
		if _, err := s.achievements.Award(user.ID, entry.ID); err != nil {
			s.logger.Error("achievement award", "user_id", user.ID, "name", name, "error", err)
			continue
		}
		s.notify(user.FamilyID, "achievement", "earned", entry.ID)
	}
}

// Achievements returns the global badge catalog.
func (s *Service) Achievements() ([]model.Achievement, error) {
	return s.achievements.List()
}

// UserAchievements lists a same-family user's earned achievements.
func (s *Service) UserAchievements(id auth.Identity, targetUserID int64) ([]model.EarnedAchievement, error) {
	target, err := s.users.GetByID(targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.FamilyID != id.FamilyID {
		return nil, ErrForbidden
	}
	return s.achievements.ListForUser(targetUserID)
}

// AwardAchievement grants a badge manually (parent action). Awarding a
// badge the user already holds returns the existing record.
func (s *Service) AwardAchievement(id auth.Identity, targetUserID, achievementID int64) (*model.UserAchievement, error) {
	target, err := s.users.GetByID(targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.FamilyID != id.FamilyID {
		return nil, ErrForbidden
	}

	entry, err := s.achievements.GetByID(achievementID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}

	ua, err := s.achievements.Award(targetUserID, achievementID)
	if err != nil {
		return nil, err
	}

	s.notify(target.FamilyID, "achievement", "earned", achievementID)
	return ua, nil
}
