package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/chorequest/internal/model"
)

type RewardStore struct {
	db *sql.DB
}

func NewRewardStore(db *sql.DB) *RewardStore {
	return &RewardStore{db: db}
}

func scanReward(scanner interface{ Scan(...any) error }) (*model.Reward, error) {
	var r model.Reward
	var description sql.NullString
	var available int

	err := scanner.Scan(&r.ID, &r.Name, &description, &r.PointsCost, &r.Icon, &r.FamilyID, &available)
	if err != nil {
		return nil, err
	}

	r.Description = description.String
	r.IsAvailable = available != 0
	return &r, nil
}

const rewardCols = `id, name, description, points_cost, icon, family_id, is_available`

func (s *RewardStore) Create(name, description string, pointsCost int, icon string, familyID int64) (*model.Reward, error) {
	result, err := s.db.Exec(
		`INSERT INTO rewards (name, description, points_cost, icon, family_id) VALUES (?, ?, ?, ?, ?)`,
		name, description, pointsCost, icon, familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reward: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *RewardStore) GetByID(id int64) (*model.Reward, error) {
	row := s.db.QueryRow(`SELECT `+rewardCols+` FROM rewards WHERE id = ?`, id)
	r, err := scanReward(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reward: %w", err)
	}
	return r, nil
}

// ListAvailableByFamily returns the family's redeemable rewards.
func (s *RewardStore) ListAvailableByFamily(familyID int64) ([]model.Reward, error) {
	rows, err := s.db.Query(
		`SELECT `+rewardCols+` FROM rewards WHERE family_id = ? AND is_available = 1 ORDER BY points_cost ASC, name ASC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rewards by family: %w", err)
	}
	defer rows.Close()

	var rewards []model.Reward
	for rows.Next() {
		r, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		rewards = append(rewards, *r)
	}
	return rewards, rows.Err()
}

func (s *RewardStore) Update(id int64, name, description string, pointsCost int, icon string, available bool) (*model.Reward, error) {
	var a int
	if available {
		a = 1
	}

	_, err := s.db.Exec(
		`UPDATE rewards SET name = ?, description = ?, points_cost = ?, icon = ?, is_available = ? WHERE id = ?`,
		name, description, pointsCost, icon, a, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update reward: %w", err)
	}
	return s.GetByID(id)
}

func (s *RewardStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM rewards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reward: %w", err)
	}
	return nil
}
