package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/chorequest/internal/achievement"
	"github.com/dukerupert/chorequest/internal/auth"
	"github.com/dukerupert/chorequest/internal/model"
	"github.com/dukerupert/chorequest/internal/store"
)

// Achievements populates the badge catalog if it is empty. Safe to run on
// every startup.
func Achievements(achievements *store.AchievementStore) error {
	n, err := achievements.Count()
	if err != nil {
		return fmt.Errorf("count achievements: %w", err)
	}
	if n > 0 {
		return nil
	}

	catalog := []struct {
		name, description, icon, color string
	}{
		{achievement.FirstChore, "Complete your first chore", "star", "#FFD700"},
		{achievement.ChoreMaster, "Complete 10 chores", "trophy", "#C0C0C0"},
		{achievement.EarlyBird, "Complete 5 chores before noon", "sunrise", "#FFA500"},
		{achievement.StreakMaster, "Complete chores 3 days in a row", "flame", "#FF4500"},
		{achievement.PointCollector, "Earn 250 points", "gem", "#9370DB"},
	}
	for _, entry := range catalog {
		if _, err := achievements.Create(entry.name, entry.description, entry.icon, entry.color); err != nil {
			return fmt.Errorf("seed achievement %q: %w", entry.name, err)
		}
	}
	return nil
}

// Demo creates a sample family with a parent, two children, chores, and
// rewards so a fresh install has something to click on. It only runs when
// no family exists yet; the API key is fixed so integration examples work
// out of the box.
func Demo(families *store.FamilyStore, users *store.UserStore, chores *store.ChoreStore, rewards *store.RewardStore, logger *slog.Logger) error {
	n, err := families.Count()
	if err != nil {
		return fmt.Errorf("count families: %w", err)
	}
	if n > 0 {
		return nil
	}

	family, err := families.CreateWithAPIKey("The Demo Family", "family_demo_key")
	if err != nil {
		return fmt.Errorf("seed family: %w", err)
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	parent, err := users.Create("demo_parent", hash, "Alex", model.RoleParent, family.ID, "#4F46E5")
	if err != nil {
		return fmt.Errorf("seed parent: %w", err)
	}

	kids := []struct {
		username, display, color string
	}{
		{"demo_sam", "Sam", "#10B981"},
		{"demo_riley", "Riley", "#F59E0B"},
	}
	var children []*model.User
	for _, k := range kids {
		child, err := users.Create(k.username, hash, k.display, model.RoleChild, family.ID, k.color)
		if err != nil {
			return fmt.Errorf("seed child %q: %w", k.username, err)
		}
		children = append(children, child)
	}

	due := time.Now().Add(24 * time.Hour)
	demoChores := []struct {
		name, description string
		points            int
		icon              string
		assignee          int64
	}{
		{"Make your bed", "Smooth the covers and arrange the pillows", 10, "bed", children[0].ID},
		{"Take out the trash", "All bins to the curb before pickup", 15, "trash", children[0].ID},
		{"Feed the dog", "One scoop, fresh water", 10, "dog", children[1].ID},
		{"Homework", "Finish and pack your school bag", 20, "book", children[1].ID},
	}
	for _, c := range demoChores {
		if _, err := chores.Create(c.name, c.description, c.points, c.icon, due, c.assignee, family.ID, &parent.ID); err != nil {
			return fmt.Errorf("seed chore %q: %w", c.name, err)
		}
	}

	demoRewards := []struct {
		name, description string
		cost              int
		icon              string
	}{
		{"Extra screen time", "30 minutes of games or videos", 50, "gamepad"},
		{"Pick dinner", "Choose what the family eats tonight", 80, "pizza"},
		{"Movie night", "Your movie, your snacks", 120, "film"},
	}
	for _, rw := range demoRewards {
		if _, err := rewards.Create(rw.name, rw.description, rw.cost, rw.icon, family.ID); err != nil {
			return fmt.Errorf("seed reward %q: %w", rw.name, err)
		}
	}

	logger.Info("seeded demo family", "family_id", family.ID, "api_key", "family_demo_key")
	return nil
}
