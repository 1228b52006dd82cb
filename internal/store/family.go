package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukerupert/chorequest/internal/model"
)

type FamilyStore struct {
	db *sql.DB
}

func NewFamilyStore(db *sql.DB) *FamilyStore {
	return &FamilyStore{db: db}
}

func scanFamily(scanner interface{ Scan(...any) error }) (*model.Family, error) {
	var f model.Family
	err := scanner.Scan(&f.ID, &f.Name, &f.APIKey, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

const familyCols = `id, name, api_key, created_at`

// Create inserts a family with a freshly generated API key. The key is
// the sole credential for the external integration surface.
func (s *FamilyStore) Create(name string) (*model.Family, error) {
	apiKey := "family_" + uuid.NewString()

	result, err := s.db.Exec(
		`INSERT INTO families (name, api_key) VALUES (?, ?)`,
		name, apiKey,
	)
	if err != nil {
		return nil, fmt.Errorf("insert family: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// CreateWithAPIKey inserts a family with a caller-supplied API key.
// Used by the demo seeder, which needs a stable key.
func (s *FamilyStore) CreateWithAPIKey(name, apiKey string) (*model.Family, error) {
	result, err := s.db.Exec(
		`INSERT INTO families (name, api_key) VALUES (?, ?)`,
		name, apiKey,
	)
	if err != nil {
		return nil, fmt.Errorf("insert family: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *FamilyStore) GetByID(id int64) (*model.Family, error) {
	row := s.db.QueryRow(`SELECT `+familyCols+` FROM families WHERE id = ?`, id)
	f, err := scanFamily(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	return f, nil
}

// GetByAPIKey resolves an API key to its family, or nil if no family
// holds the key.
func (s *FamilyStore) GetByAPIKey(apiKey string) (*model.Family, error) {
	row := s.db.QueryRow(`SELECT `+familyCols+` FROM families WHERE api_key = ?`, apiKey)
	f, err := scanFamily(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get family by api key: %w", err)
	}
	return f, nil
}

// Count returns the number of families. Used by the demo seeder to
// decide whether the database is fresh.
func (s *FamilyStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM families`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count families: %w", err)
	}
	return n, nil
}
