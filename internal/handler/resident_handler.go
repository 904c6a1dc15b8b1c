package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yurtswap/yurtswap-api/internal/dto"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
	"github.com/yurtswap/yurtswap-api/pkg/response"
)

type residentService interface {
	Get(ctx context.Context, id string) (*models.Resident, error)
	Upsert(ctx context.Context, id string, payload dto.ResidentPayload) (*models.Resident, error)
	TouchActivity(ctx context.Context, id string) error
}

// ResidentHandler exposes the resident profile endpoints.
type ResidentHandler struct {
	service residentService
}

// NewResidentHandler builds a new handler.
func NewResidentHandler(service residentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

// Get godoc
// @Summary Get a resident profile
// @Tags Residents
// @Produce json
// @Param id path string true "Resident ID"
// @Success 200 {object} response.Envelope
// @Router /residents/{id} [get]
func (h *ResidentHandler) Get(c *gin.Context) {
	resident, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resident, nil)
}

// Upsert godoc
// @Summary Create or merge-update a resident profile
// @Tags Residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Param payload body dto.ResidentPayload true "Resident payload"
// @Success 200 {object} response.Envelope
// @Router /residents/{id} [put]
func (h *ResidentHandler) Upsert(c *gin.Context) {
	var payload dto.ResidentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resident payload"))
		return
	}
	resident, err := h.service.Upsert(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resident, nil)
}

// TouchActivity godoc
// @Summary Record resident activity
// @Tags Residents
// @Param id path string true "Resident ID"
// @Success 204
// @Router /residents/{id}/activity [post]
func (h *ResidentHandler) TouchActivity(c *gin.Context) {
	if err := h.service.TouchActivity(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
