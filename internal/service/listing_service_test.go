package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurtswap/yurtswap-api/internal/dto"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

type listingRepoStub struct {
	items map[string]models.Listing
	order []string
	err   error
}

func (s *listingRepoStub) List(ctx context.Context) ([]models.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := make([]models.Listing, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result, nil
}

func (s *listingRepoStub) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	listing, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &listing, nil
}

func (s *listingRepoStub) Upsert(ctx context.Context, listing *models.Listing) error {
	if s.err != nil {
		return s.err
	}
	if s.items == nil {
		s.items = make(map[string]models.Listing)
	}
	if _, ok := s.items[listing.ID]; !ok {
		s.order = append(s.order, listing.ID)
	}
	s.items[listing.ID] = *listing
	return nil
}

func (s *listingRepoStub) Delete(ctx context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func maleRoom() models.SpecificDormInfo {
	return models.SpecificDormInfo{
		Gender:   models.GenderMale,
		Campus:   models.CampusMain,
		Capacity: models.CapacityTwo,
		BunkBed:  false,
	}
}

func listingPayload() dto.ListingPayload {
	return dto.ListingPayload{
		ContactInfo: "+90 555 000 0000",
		CurrentDorm: maleRoom(),
	}
}

func newListingService(repo *listingRepoStub) *ListingService {
	return NewListingService(repo, nil, nil, newTokenService(), nil, nil, ListingServiceConfig{})
}

func TestListingServiceCreateIssuesOwnerToken(t *testing.T) {
	repo := &listingRepoStub{}
	svc := newListingService(repo)

	created, err := svc.Create(context.Background(), listingPayload())
	require.NoError(t, err)
	require.NotEmpty(t, created.Listing.ID)
	assert.NotEmpty(t, created.OwnerToken)
	assert.False(t, created.Listing.CreatedAt.IsZero())
	assert.Len(t, repo.items, 1)

	assert.NoError(t, svc.tokens.Validate(created.OwnerToken, ResourceListing, created.Listing.ID))
}

func TestListingServiceCreateRejectsInvalidEnum(t *testing.T) {
	svc := newListingService(&listingRepoStub{})

	payload := listingPayload()
	payload.CurrentDorm.Gender = "Unknown"

	_, err := svc.Create(context.Background(), payload)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestListingServiceCreateRequiresContactInfo(t *testing.T) {
	svc := newListingService(&listingRepoStub{})

	payload := listingPayload()
	payload.ContactInfo = ""

	_, err := svc.Create(context.Background(), payload)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestListingServiceUpdateRequiresMatchingToken(t *testing.T) {
	repo := &listingRepoStub{}
	svc := newListingService(repo)

	first, err := svc.Create(context.Background(), listingPayload())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), listingPayload())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), first.Listing.ID, second.OwnerToken, listingPayload())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestListingServiceUpdatePreservesCreatedAt(t *testing.T) {
	repo := &listingRepoStub{}
	svc := newListingService(repo)

	created, err := svc.Create(context.Background(), listingPayload())
	require.NoError(t, err)

	payload := listingPayload()
	payload.CurrentDormDetails = "third floor, corner room"

	time.Sleep(time.Millisecond)
	updated, err := svc.Update(context.Background(), created.Listing.ID, created.OwnerToken, payload)
	require.NoError(t, err)

	assert.Equal(t, created.Listing.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "third floor, corner room", repo.items[created.Listing.ID].CurrentDormDetails)
}

func TestListingServiceDeleteUnknownID(t *testing.T) {
	svc := newListingService(&listingRepoStub{})

	token, err := svc.tokens.Issue(ResourceListing, "missing")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "missing", token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestListingServiceMatchesMutualOnly(t *testing.T) {
	repo := &listingRepoStub{}
	svc := newListingService(repo)

	femaleRoom := models.SpecificDormInfo{
		Gender:   models.GenderFemale,
		Campus:   models.CampusWest,
		Capacity: models.CapacityTwo,
	}

	a, err := svc.Create(context.Background(), dto.ListingPayload{
		ContactInfo: "a",
		CurrentDorm: maleRoom(),
		DesiredDorm: femaleRoom.Lift(),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.ListingPayload{
		ContactInfo: "b",
		CurrentDorm: models.SpecificDormInfo{Gender: models.GenderFemale, Campus: models.CampusWest, Capacity: models.CapacityTwo},
		DesiredDorm: maleRoom().Lift(),
	})
	require.NoError(t, err)

	// wants a's room but offers something a does not want
	_, err = svc.Create(context.Background(), dto.ListingPayload{
		ContactInfo: "c",
		CurrentDorm: models.SpecificDormInfo{Gender: models.GenderMale, Campus: models.CampusWest, Capacity: models.CapacityFive},
		DesiredDorm: maleRoom().Lift(),
	})
	require.NoError(t, err)

	matches, err := svc.Matches(context.Background(), a.Listing.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ContactInfo)
}

func TestListingServiceMatchesUnknownID(t *testing.T) {
	svc := newListingService(&listingRepoStub{})

	_, err := svc.Matches(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
