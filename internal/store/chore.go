package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dukerupert/chorequest/internal/model"
)

type ChoreStore struct {
	db *sql.DB
}

func NewChoreStore(db *sql.DB) *ChoreStore {
	return &ChoreStore{db: db}
}

func scanChore(scanner interface{ Scan(...any) error }) (*model.Chore, error) {
	var c model.Chore
	var description sql.NullString
	var completed int
	var completedAt sql.NullTime
	var createdBy sql.NullInt64

	err := scanner.Scan(
		&c.ID, &c.Name, &description, &c.Points, &c.Icon, &c.DueDate,
		&completed, &c.AssignedToID, &c.FamilyID, &completedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}

	c.Description = description.String
	c.IsCompleted = completed != 0
	if completedAt.Valid {
		t := completedAt.Time
		c.CompletedAt = &t
	}
	if createdBy.Valid {
		c.CreatedBy = &createdBy.Int64
	}
	return &c, nil
}

const choreCols = `id, name, description, points, icon, due_date, is_completed, assigned_to_id, family_id, completed_at, created_by`

func (s *ChoreStore) Create(name, description string, points int, icon string, dueDate time.Time, assignedToID, familyID int64, createdBy *int64) (*model.Chore, error) {
	var cBy sql.NullInt64
	if createdBy != nil {
		cBy = sql.NullInt64{Int64: *createdBy, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO chores (name, description, points, icon, due_date, assigned_to_id, family_id, created_by) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		name, description, points, icon, dueDate.UTC(), assignedToID, familyID, cBy,
	)
	if err != nil {
		return nil, fmt.Errorf("insert chore: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *ChoreStore) GetByID(id int64) (*model.Chore, error) {
	row := s.db.QueryRow(`SELECT `+choreCols+` FROM chores WHERE id = ?`, id)
	c, err := scanChore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chore: %w", err)
	}
	return c, nil
}

func (s *ChoreStore) ListByFamily(familyID int64) ([]model.Chore, error) {
	rows, err := s.db.Query(
		`SELECT `+choreCols+` FROM chores WHERE family_id = ? ORDER BY is_completed ASC, due_date ASC, name ASC`,
		familyID,
	)
	if err != nil {
		return nil, fmt.Errorf("list chores by family: %w", err)
	}
	defer rows.Close()
	return collectChores(rows)
}

func (s *ChoreStore) ListByAssignee(userID int64) ([]model.Chore, error) {
	rows, err := s.db.Query(
		`SELECT `+choreCols+` FROM chores WHERE assigned_to_id = ? ORDER BY is_completed ASC, due_date ASC, name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list chores by assignee: %w", err)
	}
	defer rows.Close()
	return collectChores(rows)
}

// ListCompletedByAssignee returns the user's completed chores, newest
// completion first. Input for achievement evaluation.
func (s *ChoreStore) ListCompletedByAssignee(userID int64) ([]model.Chore, error) {
	rows, err := s.db.Query(
		`SELECT `+choreCols+` FROM chores WHERE assigned_to_id = ? AND is_completed = 1 ORDER BY completed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list completed chores: %w", err)
	}
	defer rows.Close()
	return collectChores(rows)
}

func collectChores(rows *sql.Rows) ([]model.Chore, error) {
	var chores []model.Chore
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chore: %w", err)
		}
		chores = append(chores, *c)
	}
	return chores, rows.Err()
}

// Update rewrites a pending chore's editable fields. Completed chores are
// immutable; the condition keeps them so even under concurrent completes.
func (s *ChoreStore) Update(id int64, name, description string, points int, icon string, dueDate time.Time, assignedToID int64) (*model.Chore, error) {
	_, err := s.db.Exec(
		`UPDATE chores SET name = ?, description = ?, points = ?, icon = ?, due_date = ?, assigned_to_id = ? WHERE id = ? AND is_completed = 0`,
		name, description, points, icon, dueDate.UTC(), assignedToID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update chore: %w", err)
	}
	return s.GetByID(id)
}

func (s *ChoreStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM chores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete chore: %w", err)
	}
	return nil
}

// Complete transitions a pending chore to completed. The is_completed
// guard in the UPDATE serializes concurrent attempts: exactly one caller
// sees completed=true, the rest get false.
func (s *ChoreStore) Complete(id int64, completedAt time.Time) (bool, error) {
	result, err := s.db.Exec(
		`UPDATE chores SET is_completed = 1, completed_at = ? WHERE id = ? AND is_completed = 0`,
		completedAt.UTC(), id,
	)
	if err != nil {
		return false, fmt.Errorf("complete chore: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}
