package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yurtswap/yurtswap-api/internal/dto"
	"github.com/yurtswap/yurtswap-api/internal/match"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

type listingRepository interface {
	List(ctx context.Context) ([]models.Listing, error)
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	Upsert(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id string) error
}

// ListingServiceConfig tunes cache behaviour for match lookups.
type ListingServiceConfig struct {
	MatchesTTL time.Duration
}

// ListingService orchestrates the swap-listing workflow: CRUD with owner
// tokens and the per-listing mutual-match lookup.
type ListingService struct {
	repo      listingRepository
	cache     *CacheService
	metrics   *MetricsService
	tokens    *TokenService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ListingServiceConfig
}

// NewListingService constructs a ListingService.
func NewListingService(repo listingRepository, cache *CacheService, metrics *MetricsService, tokens *TokenService, validate *validator.Validate, logger *zap.Logger, cfg ListingServiceConfig) *ListingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MatchesTTL <= 0 {
		cfg.MatchesTTL = time.Minute
	}
	return &ListingService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		tokens:    tokens,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// List returns every listing, newest first.
func (s *ListingService) List(ctx context.Context) ([]models.Listing, error) {
	start := time.Now()
	listings, err := s.repo.List(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("listings_list", time.Since(start))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list listings")
	}
	return listings, nil
}

// Get returns a single listing by id.
func (s *ListingService) Get(ctx context.Context, id string) (*models.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "listing not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load listing")
	}
	return listing, nil
}

// Create validates and stores a new listing, returning it together with
// the owner token that authorizes future mutation.
func (s *ListingService) Create(ctx context.Context, payload dto.ListingPayload) (*dto.ListingCreated, error) {
	listing, err := s.buildListing(uuid.NewString(), payload)
	if err != nil {
		return nil, err
	}
	listing.CreatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, listing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store listing")
	}
	s.invalidateCaches(ctx)

	token, err := s.tokens.Issue(ResourceListing, listing.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue owner token")
	}

	s.logger.Info("listing created", zap.String("id", listing.ID))
	return &dto.ListingCreated{Listing: *listing, OwnerToken: token}, nil
}

// Update replaces a listing wholesale. Last writer wins; there is no
// conflict detection. The owner token must authorize the record.
func (s *ListingService) Update(ctx context.Context, id, ownerToken string, payload dto.ListingPayload) (*models.Listing, error) {
	if err := s.tokens.Validate(ownerToken, ResourceListing, id); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	listing, err := s.buildListing(id, payload)
	if err != nil {
		return nil, err
	}
	listing.CreatedAt = existing.CreatedAt

	if err := s.repo.Upsert(ctx, listing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update listing")
	}
	s.invalidateCaches(ctx)

	s.logger.Info("listing updated", zap.String("id", id))
	return listing, nil
}

// Delete removes a listing. The owner token must authorize the record.
func (s *ListingService) Delete(ctx context.Context, id, ownerToken string) error {
	if err := s.tokens.Validate(ownerToken, ResourceListing, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "listing not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete listing")
	}
	s.invalidateCaches(ctx)

	s.logger.Info("listing deleted", zap.String("id", id))
	return nil
}

// Matches computes the mutual swap matches for one listing over the full
// current snapshot.
func (s *ListingService) Matches(ctx context.Context, id string) ([]models.Listing, error) {
	cacheKey := fmt.Sprintf("matches:listing:%s", id)
	var cached []models.Listing
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	listings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var me *models.Listing
	for i := range listings {
		if listings[i].ID == id {
			me = &listings[i]
			break
		}
	}
	if me == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "listing not found")
	}

	start := time.Now()
	matches := match.MatchesFor(*me, listings)
	if s.metrics != nil {
		s.metrics.ObserveMatchComputation("listing_matches", time.Since(start))
	}

	if err := s.cache.Set(ctx, cacheKey, matches, s.cfg.MatchesTTL); err != nil {
		s.logger.Warn("failed to cache listing matches", zap.String("id", id), zap.Error(err))
	}
	return matches, nil
}

func (s *ListingService) buildListing(id string, payload dto.ListingPayload) (*models.Listing, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid listing payload")
	}
	if err := validateCurrentDorm(payload.CurrentDorm); err != nil {
		return nil, err
	}

	return &models.Listing{
		ID:                  id,
		ContactInfo:         payload.ContactInfo,
		CurrentDorm:         payload.CurrentDorm,
		CurrentDormDetails:  payload.CurrentDormDetails,
		DesiredDorm:         payload.DesiredDorm,
		OptionalRoomDetails: payload.OptionalRoomDetails,
	}, nil
}

func (s *ListingService) invalidateCaches(ctx context.Context) {
	for _, pattern := range []string{"stats:rooms*", "matches:*"} {
		if err := s.cache.Invalidate(ctx, pattern); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}

func validateCurrentDorm(dorm models.SpecificDormInfo) error {
	if !dorm.Gender.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "invalid gender")
	}
	if !dorm.Campus.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "invalid campus")
	}
	if !dorm.Capacity.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "invalid capacity")
	}
	return nil
}
