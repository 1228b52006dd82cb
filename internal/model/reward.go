package model

import "time"

type Reward struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PointsCost  int    `json:"pointsCost"`
	Icon        string `json:"icon"`
	FamilyID    int64  `json:"familyId"`
	IsAvailable bool   `json:"isAvailable"`
}

// Redemption records points spent on a reward. PointsSpent snapshots the
// reward's cost at redemption time; later reward edits do not affect it.
// Points are debited at creation, not at approval.
type Redemption struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	RewardID    int64     `json:"rewardId"`
	PointsSpent int       `json:"pointsSpent"`
	RedeemedAt  time.Time `json:"redeemedAt"`
	IsApproved  bool      `json:"isApproved"`
}
