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
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

type residentServiceMock struct {
	resident *models.Resident
	err      error
	touched  []string
}

func (m *residentServiceMock) Get(ctx context.Context, id string) (*models.Resident, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resident, nil
}

func (m *residentServiceMock) Upsert(ctx context.Context, id string, payload dto.ResidentPayload) (*models.Resident, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resident, nil
}

func (m *residentServiceMock) TouchActivity(ctx context.Context, id string) error {
	m.touched = append(m.touched, id)
	return m.err
}

func TestResidentHandlerUpsert(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &residentServiceMock{resident: &models.Resident{ID: "r1", Name: "Mehmet"}}
	handler := NewResidentHandler(mock)

	body, _ := json.Marshal(dto.ResidentPayload{Name: "Mehmet"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/residents/r1", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	handler.Upsert(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mehmet")
}

func TestResidentHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResidentHandler(&residentServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "resident not found")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/residents/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResidentHandlerTouchActivity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &residentServiceMock{}
	handler := NewResidentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/residents/r1/activity", nil)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	handler.TouchActivity(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"r1"}, mock.touched)
}
