package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurtswap/yurtswap-api/internal/models"
	"github.com/yurtswap/yurtswap-api/internal/service"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

type statsServiceMock struct {
	rooms           *models.RoomStats
	roommates       *models.RoommateStats
	swapSummary     *models.SwapMatchSummary
	roommateSummary *models.RoommateMatchSummary
	cacheHit        bool
	err             error
}

func (m *statsServiceMock) RoomStats(ctx context.Context) (*models.RoomStats, bool, error) {
	return m.rooms, m.cacheHit, m.err
}

func (m *statsServiceMock) RoommateStats(ctx context.Context) (*models.RoommateStats, bool, error) {
	return m.roommates, m.cacheHit, m.err
}

func (m *statsServiceMock) SwapMatches(ctx context.Context) (*models.SwapMatchSummary, bool, error) {
	return m.swapSummary, m.cacheHit, m.err
}

func (m *statsServiceMock) RoommateMatches(ctx context.Context) (*models.RoommateMatchSummary, bool, error) {
	return m.roommateSummary, m.cacheHit, m.err
}

type exportServiceMock struct {
	file *service.ExportFile
	err  error
}

func (m *exportServiceMock) RoomStats(ctx context.Context, format string) (*service.ExportFile, error) {
	return m.file, m.err
}

func (m *exportServiceMock) RoommateStats(ctx context.Context, format string) (*service.ExportFile, error) {
	return m.file, m.err
}

func TestStatsHandlerRoomsWithCacheMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &statsServiceMock{rooms: &models.RoomStats{TotalRooms: 4}, cacheHit: true}
	handler := NewStatsHandler(mock, &exportServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/stats/rooms", nil)

	handler.Rooms(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalRooms":4`)
	assert.Contains(t, w.Body.String(), `"cache_hit":true`)
}

func TestStatsHandlerSwapMatches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &statsServiceMock{swapSummary: &models.SwapMatchSummary{TotalMatches: 1}}
	handler := NewStatsHandler(mock, &exportServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/stats/swap-matches", nil)

	handler.SwapMatches(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalMatches":1`)
}

func TestStatsHandlerRoommatesFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &statsServiceMock{err: appErrors.ErrInternal}
	handler := NewStatsHandler(mock, &exportServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/stats/roommates", nil)

	handler.Roommates(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatsHandlerExportRoomsServesAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	export := &exportServiceMock{file: &service.ExportFile{
		Filename:    "room-stats-20260828.csv",
		ContentType: "text/csv",
		Payload:     []byte("Metric,Count\nTotal Rooms,2\n"),
	}}
	handler := NewStatsHandler(&statsServiceMock{}, export)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/stats/rooms/export?format=csv", nil)

	handler.ExportRooms(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "room-stats-20260828.csv")
	assert.Contains(t, w.Body.String(), "Total Rooms,2")
}

func TestStatsHandlerExportUnsupportedFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	export := &exportServiceMock{err: appErrors.Clone(appErrors.ErrValidation, `unsupported export format "xlsx"`)}
	handler := NewStatsHandler(&statsServiceMock{}, export)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/stats/rooms/export?format=xlsx", nil)

	handler.ExportRooms(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
