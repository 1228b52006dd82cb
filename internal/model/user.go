package model

import "time"

// Role is the closed set of user roles. Parents manage the family;
// children complete chores and earn points.
type Role string

const (
	RoleParent Role = "parent"
	RoleChild  Role = "child"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleChild
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	RoleType     Role      `json:"roleType"`
	FamilyID     int64     `json:"familyId"`
	Points       int       `json:"points"`
	Level        int       `json:"level"`
	AvatarColor  string    `json:"avatarColor"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LevelForPoints computes the level derived from a point total.
// Invariant: level = 1 + floor(points / 100).
func LevelForPoints(points int) int {
	return 1 + points/100
}
