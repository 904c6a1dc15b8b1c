package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yurtswap/yurtswap-api/internal/models"
)

// RoommateRepository manages persistence for roommate searches.
type RoommateRepository struct {
	db *sqlx.DB
}

// NewRoommateRepository constructs a RoommateRepository.
func NewRoommateRepository(db *sqlx.DB) *RoommateRepository {
	return &RoommateRepository{db: db}
}

const roommateColumns = "id, name, contact_info, campus, building, room_number, created_at"

// List returns the full search snapshot ordered newest first.
func (r *RoommateRepository) List(ctx context.Context) ([]models.RoommateSearch, error) {
	query := fmt.Sprintf("SELECT %s FROM roommate_searches ORDER BY created_at DESC", roommateColumns)
	var searches []models.RoommateSearch
	if err := r.db.SelectContext(ctx, &searches, query); err != nil {
		return nil, fmt.Errorf("list roommate searches: %w", err)
	}
	return searches, nil
}

// FindByID fetches one roommate search by id.
func (r *RoommateRepository) FindByID(ctx context.Context, id string) (*models.RoommateSearch, error) {
	query := fmt.Sprintf("SELECT %s FROM roommate_searches WHERE id = $1", roommateColumns)
	var search models.RoommateSearch
	if err := r.db.GetContext(ctx, &search, query, id); err != nil {
		return nil, err
	}
	return &search, nil
}

// Upsert stores the search keyed by id, replacing every field of an
// existing record. The building and room number are expected to be
// normalized by the caller before they reach storage.
func (r *RoommateRepository) Upsert(ctx context.Context, search *models.RoommateSearch) error {
	if search.CreatedAt.IsZero() {
		search.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO roommate_searches (id, name, contact_info, campus, building, room_number, created_at)
        VALUES (:id, :name, :contact_info, :campus, :building, :room_number, :created_at)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            contact_info = EXCLUDED.contact_info,
            campus = EXCLUDED.campus,
            building = EXCLUDED.building,
            room_number = EXCLUDED.room_number`
	if _, err := r.db.NamedExecContext(ctx, query, search); err != nil {
		return fmt.Errorf("upsert roommate search: %w", err)
	}
	return nil
}

// Delete removes the roommate search with the given id.
func (r *RoommateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM roommate_searches WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete roommate search: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete roommate search: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
