package model

import "time"

// Achievement is a global badge definition shared by all families.
type Achievement struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	BackgroundColor string `json:"backgroundColor"`
}

// UserAchievement records one user's earning of one badge. At most one
// row exists per (user, achievement) pair.
type UserAchievement struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	AchievementID int64     `json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`
}

// EarnedAchievement is an achievement joined with when the user earned it.
type EarnedAchievement struct {
	Achievement
	EarnedAt time.Time `json:"earnedAt"`
}
