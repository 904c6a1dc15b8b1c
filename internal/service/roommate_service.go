package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yurtswap/yurtswap-api/internal/dto"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

type roommateRepository interface {
	List(ctx context.Context) ([]models.RoommateSearch, error)
	FindByID(ctx context.Context, id string) (*models.RoommateSearch, error)
	Upsert(ctx context.Context, search *models.RoommateSearch) error
	Delete(ctx context.Context, id string) error
}

// RoommateService orchestrates the roommate-search workflow: CRUD with
// owner tokens and write-time room-key normalization.
type RoommateService struct {
	repo      roommateRepository
	cache     *CacheService
	metrics   *MetricsService
	tokens    *TokenService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRoommateService constructs a RoommateService.
func NewRoommateService(repo roommateRepository, cache *CacheService, metrics *MetricsService, tokens *TokenService, validate *validator.Validate, logger *zap.Logger) *RoommateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoommateService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		tokens:    tokens,
		validator: validate,
		logger:    logger,
	}
}

// List returns every roommate search, newest first.
func (s *RoommateService) List(ctx context.Context) ([]models.RoommateSearch, error) {
	start := time.Now()
	searches, err := s.repo.List(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("roommate_searches_list", time.Since(start))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roommate searches")
	}
	return searches, nil
}

// Get returns a single roommate search by id.
func (s *RoommateService) Get(ctx context.Context, id string) (*models.RoommateSearch, error) {
	search, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "roommate search not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roommate search")
	}
	return search, nil
}

// Create validates, normalizes and stores a new roommate search,
// returning it together with its owner token.
func (s *RoommateService) Create(ctx context.Context, payload dto.RoommateSearchPayload) (*dto.RoommateSearchCreated, error) {
	search, err := s.buildSearch(uuid.NewString(), payload)
	if err != nil {
		return nil, err
	}
	search.CreatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, search); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store roommate search")
	}
	s.invalidateCaches(ctx)

	token, err := s.tokens.Issue(ResourceRoommateSearch, search.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue owner token")
	}

	s.logger.Info("roommate search created", zap.String("id", search.ID))
	return &dto.RoommateSearchCreated{Search: *search, OwnerToken: token}, nil
}

// Update replaces a roommate search wholesale. Last writer wins.
func (s *RoommateService) Update(ctx context.Context, id, ownerToken string, payload dto.RoommateSearchPayload) (*models.RoommateSearch, error) {
	if err := s.tokens.Validate(ownerToken, ResourceRoommateSearch, id); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	search, err := s.buildSearch(id, payload)
	if err != nil {
		return nil, err
	}
	search.CreatedAt = existing.CreatedAt

	if err := s.repo.Upsert(ctx, search); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update roommate search")
	}
	s.invalidateCaches(ctx)

	s.logger.Info("roommate search updated", zap.String("id", id))
	return search, nil
}

// Delete removes a roommate search.
func (s *RoommateService) Delete(ctx context.Context, id, ownerToken string) error {
	if err := s.tokens.Validate(ownerToken, ResourceRoommateSearch, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "roommate search not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete roommate search")
	}
	s.invalidateCaches(ctx)

	s.logger.Info("roommate search deleted", zap.String("id", id))
	return nil
}

func (s *RoommateService) buildSearch(id string, payload dto.RoommateSearchPayload) (*models.RoommateSearch, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid roommate search payload")
	}
	if !payload.Campus.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid campus")
	}

	search := &models.RoommateSearch{
		ID:          id,
		Name:        payload.Name,
		ContactInfo: payload.ContactInfo,
		Campus:      payload.Campus,
		Building:    payload.Building,
		RoomNumber:  payload.RoomNumber,
	}
	search.Normalize()
	if search.Building == "" || search.RoomNumber == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "building and room number are required")
	}
	return search, nil
}

func (s *RoommateService) invalidateCaches(ctx context.Context) {
	for _, pattern := range []string{"stats:roommates*", "matches:roommate*"} {
		if err := s.cache.Invalidate(ctx, pattern); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
