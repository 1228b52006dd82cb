package achievement

import (
	"testing"
	"time"

	"github.com/dukerupert/chorequest/internal/model"
)

func choreCompletedAt(at time.Time) model.Chore {
	return model.Chore{IsCompleted: true, CompletedAt: &at}
}

func completedChores(n int, at time.Time) []model.Chore {
	chores := make([]model.Chore, n)
	for i := range chores {
		chores[i] = choreCompletedAt(at)
	}
	return chores
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func TestEvaluateFirstChore(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	earned := Evaluate(completedChores(1, now), 10, now)
	if !contains(earned, FirstChore) {
		t.Errorf("one completion should earn %q, got %v", FirstChore, earned)
	}

	earned = Evaluate(completedChores(2, now), 20, now)
	if contains(earned, FirstChore) {
		t.Errorf("%q should only fire at exactly one completion, got %v", FirstChore, earned)
	}

	earned = Evaluate(nil, 0, now)
	if len(earned) != 0 {
		t.Errorf("no completions should earn nothing, got %v", earned)
	}
}

func TestEvaluateChoreMaster(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	earned := Evaluate(completedChores(10, now), 100, now)
	if !contains(earned, ChoreMaster) {
		t.Errorf("ten completions should earn %q, got %v", ChoreMaster, earned)
	}

	earned = Evaluate(completedChores(9, now), 90, now)
	if contains(earned, ChoreMaster) {
		t.Errorf("nine completions should not earn %q", ChoreMaster)
	}
}

func TestEvaluateEarlyBird(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 30, 0, 0, time.Local)
	afternoon := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	chores := completedChores(4, morning)
	chores = append(chores, choreCompletedAt(afternoon))
	earned := Evaluate(chores, 0, afternoon)
	if contains(earned, EarlyBird) {
		t.Errorf("four morning completions should not earn %q", EarlyBird)
	}

	chores = append(chores, choreCompletedAt(morning))
	earned = Evaluate(chores, 0, afternoon)
	if !contains(earned, EarlyBird) {
		t.Errorf("five morning completions should earn %q, got %v", EarlyBird, earned)
	}
}

func TestEvaluateStreakMaster(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)

	chores := []model.Chore{
		choreCompletedAt(now),
		choreCompletedAt(now.AddDate(0, 0, -1)),
		choreCompletedAt(now.AddDate(0, 0, -2)),
	}
	earned := Evaluate(chores, 0, now)
	if !contains(earned, StreakMaster) {
		t.Errorf("three consecutive days should earn %q, got %v", StreakMaster, earned)
	}

	// A gap breaks the streak.
	gapped := []model.Chore{
		choreCompletedAt(now),
		choreCompletedAt(now.AddDate(0, 0, -2)),
		choreCompletedAt(now.AddDate(0, 0, -3)),
	}
	earned = Evaluate(gapped, 0, now)
	if contains(earned, StreakMaster) {
		t.Errorf("gapped days should not earn %q", StreakMaster)
	}

	// Multiple completions on one day count as a single day.
	sameDay := []model.Chore{
		choreCompletedAt(now),
		choreCompletedAt(now.Add(-time.Hour)),
		choreCompletedAt(now.Add(-2 * time.Hour)),
	}
	earned = Evaluate(sameDay, 0, now)
	if contains(earned, StreakMaster) {
		t.Errorf("one busy day should not earn %q", StreakMaster)
	}
}

func TestEvaluatePointCollector(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

	earned := Evaluate(completedChores(3, now), 250, now)
	if !contains(earned, PointCollector) {
		t.Errorf("250 points should earn %q, got %v", PointCollector, earned)
	}

	earned = Evaluate(completedChores(3, now), 249, now)
	if contains(earned, PointCollector) {
		t.Errorf("249 points should not earn %q", PointCollector)
	}
}

func TestEvaluateMultiple(t *testing.T) {
	morning := time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local)

	earned := Evaluate(completedChores(1, morning), 300, morning)
	if !contains(earned, FirstChore) || !contains(earned, PointCollector) {
		t.Errorf("expected both %q and %q, got %v", FirstChore, PointCollector, earned)
	}
}
