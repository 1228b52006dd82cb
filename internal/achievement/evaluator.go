// Package achievement decides which badges a user has just earned from
// their chore-completion history and point total. Evaluation is pure; the
// caller performs the (idempotent) awards.
package achievement

import (
	"time"

	"github.com/dukerupert/chorequest/internal/model"
)

// Catalog names referenced by the rules. Seeded at startup; a rule whose
// badge is missing from the catalog is skipped by the caller.
const (
	FirstChore     = "First Chore"
	ChoreMaster    = "Chore Master"
	EarlyBird      = "Early Bird"
	StreakMaster   = "Streak Master"
	PointCollector = "Point Collector"
)

const (
	choreMasterCount = 10
	earlyBirdCount   = 5
	pointsThreshold  = 250
	streakDays       = 3
	noonHour         = 12
)

// Evaluate returns the names of achievements the user qualifies for right
// now. completed is the user's completed chores, points the current
// total, now the evaluation instant. Volume rules use exact-count
// equality so they fire once when invoked at every completion; the other
// rules are thresholds and rely on award idempotence.
func Evaluate(completed []model.Chore, points int, now time.Time) []string {
	var earned []string

	if len(completed) == 1 {
		earned = append(earned, FirstChore)
	}
	if len(completed) == choreMasterCount {
		earned = append(earned, ChoreMaster)
	}
	if countBeforeNoon(completed) >= earlyBirdCount {
		earned = append(earned, EarlyBird)
	}
	if hasStreak(completed, now, streakDays) {
		earned = append(earned, StreakMaster)
	}
	if points >= pointsThreshold {
		earned = append(earned, PointCollector)
	}

	return earned
}

func countBeforeNoon(completed []model.Chore) int {
	n := 0
	for _, c := range completed {
		if c.CompletedAt != nil && c.CompletedAt.Local().Hour() < noonHour {
			n++
		}
	}
	return n
}

// hasStreak reports whether at least one completion exists on each of the
// `days` consecutive calendar days ending at now's day.
func hasStreak(completed []model.Chore, now time.Time, days int) bool {
	for i := 0; i < days; i++ {
		day := now.AddDate(0, 0, -i)
		if !completedOn(completed, day) {
			return false
		}
	}
	return true
}

func completedOn(completed []model.Chore, day time.Time) bool {
	y, m, d := day.Date()
	for _, c := range completed {
		if c.CompletedAt == nil {
			continue
		}
		cy, cm, cd := c.CompletedAt.Local().Date()
		if cy == y && cm == m && cd == d {
			return true
		}
	}
	return false
}
