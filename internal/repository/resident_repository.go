package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yurtswap/yurtswap-api/internal/models"
)

// ResidentRepository manages persistence for resident profiles.
type ResidentRepository struct {
	db *sqlx.DB
}

// NewResidentRepository constructs a ResidentRepository.
func NewResidentRepository(db *sqlx.DB) *ResidentRepository {
	return &ResidentRepository{db: db}
}

type residentRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Preferences []byte    `db:"preferences"`
	CreatedAt   time.Time `db:"created_at"`
	LastActive  time.Time `db:"last_active"`
}

func (r residentRow) toModel() (models.Resident, error) {
	resident := models.Resident{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		CreatedAt:  r.CreatedAt,
		LastActive: r.LastActive,
	}
	if len(r.Preferences) > 0 {
		if err := json.Unmarshal(r.Preferences, &resident.Preferences); err != nil {
			return models.Resident{}, fmt.Errorf("decode preferences for %s: %w", r.ID, err)
		}
	}
	return resident, nil
}

const residentColumns = "id, name, email, phone, preferences, created_at, last_active"

// FindByID fetches one resident profile by id.
func (r *ResidentRepository) FindByID(ctx context.Context, id string) (*models.Resident, error) {
	query := fmt.Sprintf("SELECT %s FROM residents WHERE id = $1", residentColumns)
	var row residentRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	resident, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &resident, nil
}

// Upsert stores the resident profile keyed by id. The creation timestamp
// of an existing record is preserved; everything else is replaced.
func (r *ResidentRepository) Upsert(ctx context.Context, resident *models.Resident) error {
	now := time.Now().UTC()
	if resident.CreatedAt.IsZero() {
		resident.CreatedAt = now
	}
	resident.LastActive = now

	prefs, err := json.Marshal(resident.Preferences)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	row := residentRow{
		ID:          resident.ID,
		Name:        resident.Name,
		Email:       resident.Email,
		Phone:       resident.Phone,
		Preferences: prefs,
		CreatedAt:   resident.CreatedAt,
		LastActive:  resident.LastActive,
	}
	const query = `INSERT INTO residents (id, name, email, phone, preferences, created_at, last_active)
        VALUES (:id, :name, :email, :phone, :preferences, :created_at, :last_active)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            email = EXCLUDED.email,
            phone = EXCLUDED.phone,
            preferences = EXCLUDED.preferences,
            last_active = EXCLUDED.last_active`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("upsert resident: %w", err)
	}
	return nil
}

// TouchLastActive records activity for the resident.
func (r *ResidentRepository) TouchLastActive(ctx context.Context, id string, ts time.Time) error {
	result, err := r.db.ExecContext(ctx, "UPDATE residents SET last_active = $2 WHERE id = $1", id, ts)
	if err != nil {
		return fmt.Errorf("touch resident: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("touch resident: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
