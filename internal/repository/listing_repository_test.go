package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurtswap/yurtswap-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func listingRowColumns() []string {
	return []string{"id", "contact_info", "gender", "campus", "capacity", "bunk_bed", "current_dorm_details", "desired_dorm", "room_details", "created_at"}
}

func TestListingRepositoryList(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewListingRepository(db)

	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(listingRowColumns()).
		AddRow("l1", "@ayse", "Kız", "Ana Kampüs", "2 Kişilik", true, "manzaralı oda",
			[]byte(`{"gender":"any","campus":"any","capacity":"multiple","preferredCapacities":["1 Kişilik","2 Kişilik"],"bunkBed":"any"}`),
			nil, created).
		AddRow("l2", "@mehmet", "Erkek", "Batı Kampüsü", "4 Kişilik", false, "",
			[]byte(`{"gender":"any","campus":"Ana Kampüs","capacity":"any","bunkBed":false}`),
			[]byte(`{"roomNumber":"101","building":"A","hasBathroom":true}`), created.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, contact_info, gender, campus, capacity, bunk_bed, current_dorm_details, desired_dorm, room_details, created_at FROM listings ORDER BY created_at DESC")).
		WillReturnRows(rows)

	listings, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "l1", listings[0].ID)
	assert.Equal(t, models.GenderFemale, listings[0].CurrentDorm.Gender)
	assert.True(t, listings[0].CurrentDorm.BunkBed)
	assert.Nil(t, listings[0].OptionalRoomDetails)
	assert.Equal(t, models.ConstraintOneOf, listings[0].DesiredDorm.Capacity.Mode)

	require.NotNil(t, listings[1].OptionalRoomDetails)
	assert.Equal(t, "A", listings[1].OptionalRoomDetails.Building)
	assert.Equal(t, models.ConstraintExactly, listings[1].DesiredDorm.Campus.Mode)
	assert.Equal(t, models.CampusMain, listings[1].DesiredDorm.Campus.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewListingRepository(db)

	mock.ExpectQuery("SELECT .+ FROM listings WHERE id =").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListingRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewListingRepository(db)

	mock.ExpectExec("INSERT INTO listings").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	listing := &models.Listing{
		ID:          "l1",
		ContactInfo: "@ayse",
		CurrentDorm: models.SpecificDormInfo{
			Gender:   models.GenderFemale,
			Campus:   models.CampusMain,
			Capacity: models.CapacityTwo,
			BunkBed:  true,
		},
	}
	require.NoError(t, repo.Upsert(context.Background(), listing))
	assert.False(t, listing.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewListingRepository(db)

	mock.ExpectExec("DELETE FROM listings WHERE id =").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
