package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/chorequest/internal/model"
)

type AchievementStore struct {
	db *sql.DB
}

func NewAchievementStore(db *sql.DB) *AchievementStore {
	return &AchievementStore{db: db}
}

func scanAchievement(scanner interface{ Scan(...any) error }) (*model.Achievement, error) {
	var a model.Achievement
	err := scanner.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.BackgroundColor)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const achievementCols = `id, name, description, icon, background_color`

func (s *AchievementStore) Create(name, description, icon, backgroundColor string) (*model.Achievement, error) {
	result, err := s.db.Exec(
		`INSERT INTO achievements (name, description, icon, background_color) VALUES (?, ?, ?, ?)`,
		name, description, icon, backgroundColor,
	)
	if err != nil {
		return nil, fmt.Errorf("insert achievement: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	row := s.db.QueryRow(`SELECT `+achievementCols+` FROM achievements WHERE id = ?`, id)
	return scanAchievement(row)
}

// List returns the global catalog.
func (s *AchievementStore) List() ([]model.Achievement, error) {
	rows, err := s.db.Query(`SELECT ` + achievementCols + ` FROM achievements ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []model.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}

func (s *AchievementStore) GetByID(id int64) (*model.Achievement, error) {
	row := s.db.QueryRow(`SELECT `+achievementCols+` FROM achievements WHERE id = ?`, id)
	a, err := scanAchievement(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get achievement: %w", err)
	}
	return a, nil
}

func (s *AchievementStore) GetByName(name string) (*model.Achievement, error) {
	row := s.db.QueryRow(`SELECT `+achievementCols+` FROM achievements WHERE name = ?`, name)
	a, err := scanAchievement(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get achievement by name: %w", err)
	}
	return a, nil
}

// Count returns the catalog size. The seeder only populates an empty catalog.
func (s *AchievementStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM achievements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count achievements: %w", err)
	}
	return n, nil
}

func scanUserAchievement(scanner interface{ Scan(...any) error }) (*model.UserAchievement, error) {
	var ua model.UserAchievement
	err := scanner.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.EarnedAt)
	if err != nil {
		return nil, err
	}
	return &ua, nil
}

const userAchievementCols = `id, user_id, achievement_id, earned_at`

// Award grants an achievement to a user. Awarding one the user already
// holds is a no-op that returns the existing record; the UNIQUE
// constraint on (user_id, achievement_id) backs this up under races.
func (s *AchievementStore) Award(userID, achievementID int64) (*model.UserAchievement, error) {
	existing, err := s.getUserAchievement(userID, achievementID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	_, err = s.db.Exec(
		`INSERT INTO user_achievements (user_id, achievement_id) VALUES (?, ?) ON CONFLICT (user_id, achievement_id) DO NOTHING`,
		userID, achievementID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user achievement: %w", err)
	}
	return s.getUserAchievement(userID, achievementID)
}

func (s *AchievementStore) getUserAchievement(userID, achievementID int64) (*model.UserAchievement, error) {
	row := s.db.QueryRow(
		`SELECT `+userAchievementCols+` FROM user_achievements WHERE user_id = ? AND achievement_id = ?`,
		userID, achievementID,
	)
	ua, err := scanUserAchievement(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user achievement: %w", err)
	}
	return ua, nil
}

// ListForUser returns the achievements a user has earned, with the
// earning timestamp, oldest first.
func (s *AchievementStore) ListForUser(userID int64) ([]model.EarnedAchievement, error) {
	rows, err := s.db.Query(
		`SELECT a.id, a.name, a.description, a.icon, a.background_color, ua.earned_at
		 FROM user_achievements ua JOIN achievements a ON a.id = ua.achievement_id
		 WHERE ua.user_id = ? ORDER BY ua.earned_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list user achievements: %w", err)
	}
	defer rows.Close()

	var earned []model.EarnedAchievement
	for rows.Next() {
		var e model.EarnedAchievement
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Icon, &e.BackgroundColor, &e.EarnedAt); err != nil {
			return nil, fmt.Errorf("scan earned achievement: %w", err)
		}
		earned = append(earned, e)
	}
	return earned, rows.Err()
}
