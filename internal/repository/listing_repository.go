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

// ListingRepository manages persistence for swap listings. The desired
// criteria and the optional room details are stored as JSON documents;
// a NULL room_details column means the field was never provided and is
// read back as absent, not as an empty object.
type ListingRepository struct {
	db *sqlx.DB
}

// NewListingRepository constructs a ListingRepository.
func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingRow struct {
	ID                 string          `db:"id"`
	ContactInfo        string          `db:"contact_info"`
	Gender             models.Gender   `db:"gender"`
	Campus             models.Campus   `db:"campus"`
	Capacity           models.Capacity `db:"capacity"`
	BunkBed            bool            `db:"bunk_bed"`
	CurrentDormDetails string          `db:"current_dorm_details"`
	DesiredDorm        []byte          `db:"desired_dorm"`
	RoomDetails        []byte          `db:"room_details"`
	CreatedAt          time.Time       `db:"created_at"`
}

func (r listingRow) toModel() (models.Listing, error) {
	listing := models.Listing{
		ID:          r.ID,
		ContactInfo: r.ContactInfo,
		CurrentDorm: models.SpecificDormInfo{
			Gender:   r.Gender,
			Campus:   r.Campus,
			Capacity: r.Capacity,
			BunkBed:  r.BunkBed,
		},
		CurrentDormDetails: r.CurrentDormDetails,
		CreatedAt:          r.CreatedAt,
	}
	if len(r.DesiredDorm) > 0 {
		if err := json.Unmarshal(r.DesiredDorm, &listing.DesiredDorm); err != nil {
			return models.Listing{}, fmt.Errorf("decode desired dorm for %s: %w", r.ID, err)
		}
	}
	if len(r.RoomDetails) > 0 {
		details := &models.RoomDetails{}
		if err := json.Unmarshal(r.RoomDetails, details); err != nil {
			return models.Listing{}, fmt.Errorf("decode room details for %s: %w", r.ID, err)
		}
		listing.OptionalRoomDetails = details
	}
	return listing, nil
}

func listingToRow(listing *models.Listing) (listingRow, error) {
	desired, err := json.Marshal(listing.DesiredDorm)
	if err != nil {
		return listingRow{}, fmt.Errorf("encode desired dorm: %w", err)
	}
	row := listingRow{
		ID:                 listing.ID,
		ContactInfo:        listing.ContactInfo,
		Gender:             listing.CurrentDorm.Gender,
		Campus:             listing.CurrentDorm.Campus,
		Capacity:           listing.CurrentDorm.Capacity,
		BunkBed:            listing.CurrentDorm.BunkBed,
		CurrentDormDetails: listing.CurrentDormDetails,
		DesiredDorm:        desired,
		CreatedAt:          listing.CreatedAt,
	}
	if listing.OptionalRoomDetails != nil {
		details, err := json.Marshal(listing.OptionalRoomDetails)
		if err != nil {
			return listingRow{}, fmt.Errorf("encode room details: %w", err)
		}
		row.RoomDetails = details
	}
	return row, nil
}

const listingColumns = "id, contact_info, gender, campus, capacity, bunk_bed, current_dorm_details, desired_dorm, room_details, created_at"

// List returns the full listing snapshot ordered newest first. Consumers
// of the matching engine rely on this ordering and never re-sort.
func (r *ListingRepository) List(ctx context.Context) ([]models.Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings ORDER BY created_at DESC", listingColumns)
	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	listings := make([]models.Listing, 0, len(rows))
	for _, row := range rows {
		listing, err := row.toModel()
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// FindByID fetches one listing by id.
func (r *ListingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings WHERE id = $1", listingColumns)
	var row listingRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	listing, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Upsert stores the listing keyed by id, replacing every field of an
// existing record. Resubmission with the same id is the update path;
// last writer wins, no conflict detection.
func (r *ListingRepository) Upsert(ctx context.Context, listing *models.Listing) error {
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}
	row, err := listingToRow(listing)
	if err != nil {
		return err
	}
	const query = `INSERT INTO listings (id, contact_info, gender, campus, capacity, bunk_bed, current_dorm_details, desired_dorm, room_details, created_at)
        VALUES (:id, :contact_info, :gender, :campus, :capacity, :bunk_bed, :current_dorm_details, :desired_dorm, :room_details, :created_at)
        ON CONFLICT (id) DO UPDATE SET
            contact_info = EXCLUDED.contact_info,
            gender = EXCLUDED.gender,
            campus = EXCLUDED.campus,
            capacity = EXCLUDED.capacity,
            bunk_bed = EXCLUDED.bunk_bed,
            current_dorm_details = EXCLUDED.current_dorm_details,
            desired_dorm = EXCLUDED.desired_dorm,
            room_details = EXCLUDED.room_details`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("upsert listing: %w", err)
	}
	return nil
}

// Delete removes the listing with the given id.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM listings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
