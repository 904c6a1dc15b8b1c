package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yurtswap/yurtswap-api/internal/dto"
	"github.com/yurtswap/yurtswap-api/internal/middleware"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
	"github.com/yurtswap/yurtswap-api/pkg/response"
)

type listingService interface {
	List(ctx context.Context) ([]models.Listing, error)
	Get(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, payload dto.ListingPayload) (*dto.ListingCreated, error)
	Update(ctx context.Context, id, ownerToken string, payload dto.ListingPayload) (*models.Listing, error)
	Delete(ctx context.Context, id, ownerToken string) error
	Matches(ctx context.Context, id string) ([]models.Listing, error)
}

// ListingHandler exposes the swap-listing endpoints.
type ListingHandler struct {
	service listingService
}

// NewListingHandler builds a new handler.
func NewListingHandler(service listingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// List godoc
// @Summary List swap listings
// @Tags Listings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	pagination := &models.Pagination{Page: 1, PageSize: len(listings), TotalCount: len(listings)}
	response.JSON(c, http.StatusOK, listings, pagination)
}

// Get godoc
// @Summary Get a swap listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Envelope
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, listing, nil)
}

// Create godoc
// @Summary Publish a swap listing
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body dto.ListingPayload true "Listing payload"
// @Success 201 {object} response.Envelope
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var payload dto.ListingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid listing payload"))
		return
	}
	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Replace a swap listing
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param payload body dto.ListingPayload true "Listing payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	var payload dto.ListingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid listing payload"))
		return
	}
	listing, err := h.service.Update(c.Request.Context(), c.Param("id"), middleware.OwnerTokenFrom(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, listing, nil)
}

// Delete godoc
// @Summary Delete a swap listing
// @Tags Listings
// @Param id path string true "Listing ID"
// @Success 204
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.OwnerTokenFrom(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Matches godoc
// @Summary Mutual swap matches for a listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Envelope
// @Router /listings/{id}/matches [get]
func (h *ListingHandler) Matches(c *gin.Context) {
	matches, err := h.service.Matches(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, matches, nil)
}
