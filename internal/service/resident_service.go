package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/yurtswap/yurtswap-api/internal/dto"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

type residentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Resident, error)
	Upsert(ctx context.Context, resident *models.Resident) error
	TouchLastActive(ctx context.Context, id string, ts time.Time) error
}

// ResidentService manages the lightweight resident profiles. Upserts are
// merges: absent payload fields keep their stored values.
type ResidentService struct {
	repo      residentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResidentService constructs a ResidentService.
func NewResidentService(repo residentRepository, validate *validator.Validate, logger *zap.Logger) *ResidentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResidentService{repo: repo, validator: validate, logger: logger}
}

// Get returns one resident profile.
func (s *ResidentService) Get(ctx context.Context, id string) (*models.Resident, error) {
	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "resident not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resident")
	}
	return resident, nil
}

// Upsert merges the payload into the stored profile, creating it when
// missing.
func (s *ResidentService) Upsert(ctx context.Context, id string, payload dto.ResidentPayload) (*models.Resident, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "resident id is required")
	}
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resident payload")
	}

	resident := &models.Resident{ID: id}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resident")
	}
	if existing != nil {
		*resident = *existing
	}

	if payload.Name != "" {
		resident.Name = payload.Name
	}
	if payload.Email != "" {
		resident.Email = payload.Email
	}
	if payload.Phone != "" {
		resident.Phone = payload.Phone
	}
	if payload.Preferences != nil {
		resident.Preferences = *payload.Preferences
	}

	if err := s.repo.Upsert(ctx, resident); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store resident")
	}

	s.logger.Info("resident upserted", zap.String("id", id))
	return resident, nil
}

// TouchActivity records that the resident was just active.
func (s *ResidentService) TouchActivity(ctx context.Context, id string) error {
	if err := s.repo.TouchLastActive(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "resident not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record resident activity")
	}
	return nil
}
