package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/chorequest/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var role string

	err := scanner.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &role,
		&u.FamilyID, &u.Points, &u.Level, &u.AvatarColor, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.RoleType = model.Role(role)
	return &u, nil
}

const userCols = `id, username, password_hash, display_name, role_type, family_id, points, level, avatar_color, created_at`

func (s *UserStore) Create(username, passwordHash, displayName string, role model.Role, familyID int64, avatarColor string) (*model.User, error) {
	result, err := s.db.Exec(
		`INSERT INTO users (username, password_hash, display_name, role_type, family_id, avatar_color) VALUES (?, ?, ?, ?, ?, ?)`,
		username, passwordHash, displayName, string(role), familyID, avatarColor,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *UserStore) GetByID(id int64) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByUsername(username string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

func (s *UserStore) ListByFamily(familyID int64) ([]model.User, error) {
	rows, err := s.db.Query(
		`SELECT `+userCols+` FROM users WHERE family_id = ? ORDER BY role_type ASC, display_name ASC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list users by family: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// AddPoints applies delta to the user's point total and recomputes the
// level in the same statement, so points and level never disagree.
// Callers are responsible for keeping the total non-negative.
func (s *UserStore) AddPoints(userID int64, delta int) (*model.User, error) {
	_, err := s.db.Exec(
		`UPDATE users SET points = points + ?, level = 1 + (points + ?) / 100 WHERE id = ?`,
		delta, delta, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("add points: %w", err)
	}
	return s.GetByID(userID)
}
