package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurtswap/yurtswap-api/internal/dto"
	"github.com/yurtswap/yurtswap-api/internal/middleware"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
	"github.com/yurtswap/yurtswap-api/pkg/response"
)

type listingServiceMock struct {
	listResp    []models.Listing
	getResp     *models.Listing
	created     *dto.ListingCreated
	updateResp  *models.Listing
	matchesResp []models.Listing
	err         error

	updateToken string
	deleteToken string
}

func (m *listingServiceMock) List(ctx context.Context) ([]models.Listing, error) {
	return m.listResp, m.err
}

func (m *listingServiceMock) Get(ctx context.Context, id string) (*models.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.getResp, nil
}

func (m *listingServiceMock) Create(ctx context.Context, payload dto.ListingPayload) (*dto.ListingCreated, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.created, nil
}

func (m *listingServiceMock) Update(ctx context.Context, id, ownerToken string, payload dto.ListingPayload) (*models.Listing, error) {
	m.updateToken = ownerToken
	if m.err != nil {
		return nil, m.err
	}
	return m.updateResp, nil
}

func (m *listingServiceMock) Delete(ctx context.Context, id, ownerToken string) error {
	m.deleteToken = ownerToken
	return m.err
}

func (m *listingServiceMock) Matches(ctx context.Context, id string) ([]models.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.matchesResp, nil
}

func sampleListing(id string) models.Listing {
	return models.Listing{
		ID:          id,
		ContactInfo: "+90 555 000 0000",
		CurrentDorm: models.SpecificDormInfo{
			Gender:   models.GenderMale,
			Campus:   models.CampusMain,
			Capacity: models.CapacityTwo,
		},
	}
}

func TestListingHandlerListEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &listingServiceMock{listResp: []models.Listing{sampleListing("l1"), sampleListing("l2")}}
	handler := NewListingHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/listings", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 2, envelope.Pagination.TotalCount)
}

func TestListingHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewListingHandler(&listingServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/listings", bytes.NewReader([]byte(`{invalid`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListingHandlerCreateReturnsOwnerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	created := &dto.ListingCreated{Listing: sampleListing("l1"), OwnerToken: "signed-token"}
	handler := NewListingHandler(&listingServiceMock{created: created})

	body, _ := json.Marshal(dto.ListingPayload{ContactInfo: "x", CurrentDorm: created.Listing.CurrentDorm})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/listings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
}

func TestListingHandlerUpdatePassesBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &listingServiceMock{updateResp: &models.Listing{ID: "l1"}}
	handler := NewListingHandler(mock)

	body, _ := json.Marshal(dto.ListingPayload{ContactInfo: "x"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/listings/l1", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "l1"}}
	c.Set(middleware.ContextOwnerTokenKey, "owner-token")

	handler.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner-token", mock.updateToken)
}

func TestListingHandlerDeleteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &listingServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "listing not found")}
	handler := NewListingHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/listings/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListingHandlerMatches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &listingServiceMock{matchesResp: []models.Listing{sampleListing("l2")}}
	handler := NewListingHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/listings/l1/matches", nil)
	c.Params = gin.Params{{Key: "id", Value: "l1"}}

	handler.Matches(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"l2"`)
}
