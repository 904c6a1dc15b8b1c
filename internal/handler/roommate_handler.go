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

type roommateService interface {
	List(ctx context.Context) ([]models.RoommateSearch, error)
	Get(ctx context.Context, id string) (*models.RoommateSearch, error)
	Create(ctx context.Context, payload dto.RoommateSearchPayload) (*dto.RoommateSearchCreated, error)
	Update(ctx context.Context, id, ownerToken string, payload dto.RoommateSearchPayload) (*models.RoommateSearch, error)
	Delete(ctx context.Context, id, ownerToken string) error
}

// RoommateHandler exposes the roommate-search endpoints.
type RoommateHandler struct {
	service roommateService
}

// NewRoommateHandler builds a new handler.
func NewRoommateHandler(service roommateService) *RoommateHandler {
	return &RoommateHandler{service: service}
}

// List godoc
// @Summary List roommate searches
// @Tags Roommates
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roommate-searches [get]
func (h *RoommateHandler) List(c *gin.Context) {
	searches, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	pagination := &models.Pagination{Page: 1, PageSize: len(searches), TotalCount: len(searches)}
	response.JSON(c, http.StatusOK, searches, pagination)
}

// Get godoc
// @Summary Get a roommate search
// @Tags Roommates
// @Produce json
// @Param id path string true "Search ID"
// @Success 200 {object} response.Envelope
// @Router /roommate-searches/{id} [get]
func (h *RoommateHandler) Get(c *gin.Context) {
	search, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, search, nil)
}

// Create godoc
// @Summary Publish a roommate search
// @Tags Roommates
// @Accept json
// @Produce json
// @Param payload body dto.RoommateSearchPayload true "Search payload"
// @Success 201 {object} response.Envelope
// @Router /roommate-searches [post]
func (h *RoommateHandler) Create(c *gin.Context) {
	var payload dto.RoommateSearchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid roommate search payload"))
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
// @Summary Replace a roommate search
// @Tags Roommates
// @Accept json
// @Produce json
// @Param id path string true "Search ID"
// @Param payload body dto.RoommateSearchPayload true "Search payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /roommate-searches/{id} [put]
func (h *RoommateHandler) Update(c *gin.Context) {
	var payload dto.RoommateSearchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid roommate search payload"))
		return
	}
	search, err := h.service.Update(c.Request.Context(), c.Param("id"), middleware.OwnerTokenFrom(c), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, search, nil)
}

// Delete godoc
// @Summary Delete a roommate search
// @Tags Roommates
// @Param id path string true "Search ID"
// @Success 204
// @Security BearerAuth
// @Router /roommate-searches/{id} [delete]
func (h *RoommateHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.OwnerTokenFrom(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
