package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/chorequest/internal/model"
)

type RedemptionStore struct {
	db *sql.DB
}

func NewRedemptionStore(db *sql.DB) *RedemptionStore {
	return &RedemptionStore{db: db}
}

func scanRedemption(scanner interface{ Scan(...any) error }) (*model.Redemption, error) {
	var r model.Redemption
	var approved int

	err := scanner.Scan(&r.ID, &r.UserID, &r.RewardID, &r.PointsSpent, &r.RedeemedAt, &approved)
	if err != nil {
		return nil, err
	}

	r.IsApproved = approved != 0
	return &r, nil
}

const redemptionCols = `id, user_id, reward_id, points_spent, redeemed_at, is_approved`

// Create records an unapproved redemption. pointsSpent is the reward's
// cost captured at this moment; it never changes afterward.
func (s *RedemptionStore) Create(userID, rewardID int64, pointsSpent int) (*model.Redemption, error) {
	result, err := s.db.Exec(
		`INSERT INTO redemptions (user_id, reward_id, points_spent) VALUES (?, ?, ?)`,
		userID, rewardID, pointsSpent,
	)
	if err != nil {
		return nil, fmt.Errorf("insert redemption: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *RedemptionStore) GetByID(id int64) (*model.Redemption, error) {
	row := s.db.QueryRow(`SELECT `+redemptionCols+` FROM redemptions WHERE id = ?`, id)
	r, err := scanRedemption(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get redemption: %w", err)
	}
	return r, nil
}

func (s *RedemptionStore) ListByUser(userID int64) ([]model.Redemption, error) {
	rows, err := s.db.Query(
		`SELECT `+redemptionCols+` FROM redemptions WHERE user_id = ? ORDER BY redeemed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list redemptions by user: %w", err)
	}
	defer rows.Close()
	return collectRedemptions(rows)
}

// ListByFamily returns every redemption made by members of the family,
// pending first so parents see what needs approval.
func (s *RedemptionStore) ListByFamily(familyID int64) ([]model.Redemption, error) {
	rows, err := s.db.Query(
		`SELECT r.id, r.user_id, r.reward_id, r.points_spent, r.redeemed_at, r.is_approved
		 FROM redemptions r JOIN users u ON u.id = r.user_id
		 WHERE u.family_id = ? ORDER BY r.is_approved ASC, r.redeemed_at DESC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list redemptions by family: %w", err)
	}
	defer rows.Close()
	return collectRedemptions(rows)
}

func collectRedemptions(rows *sql.Rows) ([]model.Redemption, error) {
	var redemptions []model.Redemption
	for rows.Next() {
		r, err := scanRedemption(rows)
		if err != nil {
			return nil, fmt.Errorf("scan redemption: %w", err)
		}
		redemptions = append(redemptions, *r)
	}
	return redemptions, rows.Err()
}

// Approve flips an unapproved redemption to approved. Returns false when
// the redemption was already approved (or the row is gone), so concurrent
// approvals resolve to a single winner.
func (s *RedemptionStore) Approve(id int64) (bool, error) {
	result, err := s.db.Exec(
		`UPDATE redemptions SET is_approved = 1 WHERE id = ? AND is_approved = 0`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("approve redemption: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}
