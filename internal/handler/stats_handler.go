package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yurtswap/yurtswap-api/internal/middleware"
	"github.com/yurtswap/yurtswap-api/internal/models"
	"github.com/yurtswap/yurtswap-api/internal/service"
	"github.com/yurtswap/yurtswap-api/pkg/response"
)

type statsService interface {
	RoomStats(ctx context.Context) (*models.RoomStats, bool, error)
	RoommateStats(ctx context.Context) (*models.RoommateStats, bool, error)
	SwapMatches(ctx context.Context) (*models.SwapMatchSummary, bool, error)
	RoommateMatches(ctx context.Context) (*models.RoommateMatchSummary, bool, error)
}

type exportService interface {
	RoomStats(ctx context.Context, format string) (*service.ExportFile, error)
	RoommateStats(ctx context.Context, format string) (*service.ExportFile, error)
}

// StatsHandler exposes the derived statistics and match summaries.
type StatsHandler struct {
	stats  statsService
	export exportService
}

// NewStatsHandler builds a new handler.
func NewStatsHandler(stats statsService, export exportService) *StatsHandler {
	return &StatsHandler{stats: stats, export: export}
}

// Rooms godoc
// @Summary Room statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats/rooms [get]
func (h *StatsHandler) Rooms(c *gin.Context) {
	stats, cacheHit, err := h.stats.RoomStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, stats, nil, middleware.ExtractMeta(c))
}

// Roommates godoc
// @Summary Roommate search statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats/roommates [get]
func (h *StatsHandler) Roommates(c *gin.Context) {
	stats, cacheHit, err := h.stats.RoommateStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, stats, nil, middleware.ExtractMeta(c))
}

// SwapMatches godoc
// @Summary Exact swap pair report
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats/swap-matches [get]
func (h *StatsHandler) SwapMatches(c *gin.Context) {
	summary, cacheHit, err := h.stats.SwapMatches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, nil, middleware.ExtractMeta(c))
}

// RoommateMatches godoc
// @Summary Co-occupancy report
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats/roommate-matches [get]
func (h *StatsHandler) RoommateMatches(c *gin.Context) {
	summary, cacheHit, err := h.stats.RoommateMatches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, nil, middleware.ExtractMeta(c))
}

// ExportRooms godoc
// @Summary Export room statistics
// @Tags Stats
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "Export format (csv or pdf)"
// @Success 200
// @Router /stats/rooms/export [get]
func (h *StatsHandler) ExportRooms(c *gin.Context) {
	file, err := h.export.RoomStats(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

// ExportRoommates godoc
// @Summary Export roommate statistics
// @Tags Stats
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "Export format (csv or pdf)"
// @Success 200
// @Router /stats/roommates/export [get]
func (h *StatsHandler) ExportRoommates(c *gin.Context) {
	file, err := h.export.RoommateStats(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

func serveExport(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
