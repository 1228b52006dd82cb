package model

import "time"

// Chore is a one-shot assignable task. It starts pending and transitions
// exactly once to completed; there is no un-complete operation.
type Chore struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Points       int        `json:"points"`
	Icon         string     `json:"icon"`
	DueDate      time.Time  `json:"dueDate"`
	IsCompleted  bool       `json:"isCompleted"`
	AssignedToID int64      `json:"assignedToId"`
	FamilyID     int64      `json:"familyId"`
	CompletedAt  *time.Time `json:"completedAt"`
	CreatedBy    *int64     `json:"createdBy"`
}
