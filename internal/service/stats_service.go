package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yurtswap/yurtswap-api/internal/match"
	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

// Cache keys for the derived views. Listing writes invalidate the room
// side, roommate-search writes the roommate side.
const (
	cacheKeyRoomStats       = "stats:rooms"
	cacheKeyRoommateStats   = "stats:roommates"
	cacheKeySwapMatches     = "matches:swap-summary"
	cacheKeyRoommateMatches = "matches:roommate-summary"
)

type listingReader interface {
	List(ctx context.Context) ([]models.Listing, error)
}

type roommateReader interface {
	List(ctx context.Context) ([]models.RoommateSearch, error)
}

// StatsServiceConfig tunes cache behaviour for the derived views.
type StatsServiceConfig struct {
	StatsTTL   time.Duration
	MatchesTTL time.Duration
}

// StatsService computes the derived statistics and match summaries on
// demand from the full current snapshots, with cache-aside reuse
// between recomputations.
type StatsService struct {
	listings  listingReader
	roommates roommateReader
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       StatsServiceConfig
}

// NewStatsService constructs a StatsService.
func NewStatsService(listings listingReader, roommates roommateReader, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg StatsServiceConfig) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.StatsTTL <= 0 {
		cfg.StatsTTL = 5 * time.Minute
	}
	if cfg.MatchesTTL <= 0 {
		cfg.MatchesTTL = time.Minute
	}
	return &StatsService{
		listings:  listings,
		roommates: roommates,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
	}
}

// RoomStats aggregates the published current rooms by category. The
// boolean reports whether the result came from cache.
func (s *StatsService) RoomStats(ctx context.Context) (*models.RoomStats, bool, error) {
	var cached models.RoomStats
	if hit, _ := s.cache.Get(ctx, cacheKeyRoomStats, &cached); hit {
		return &cached, true, nil
	}

	listings, err := s.listListings(ctx)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	stats := match.ComputeRoomStats(listings)
	s.observe("room_stats", start)

	s.store(ctx, cacheKeyRoomStats, stats, s.cfg.StatsTTL)
	return &stats, false, nil
}

// RoommateStats aggregates the published roommate searches.
func (s *StatsService) RoommateStats(ctx context.Context) (*models.RoommateStats, bool, error) {
	var cached models.RoommateStats
	if hit, _ := s.cache.Get(ctx, cacheKeyRoommateStats, &cached); hit {
		return &cached, true, nil
	}

	searches, err := s.listSearches(ctx)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	stats := match.ComputeRoommateStats(searches)
	s.observe("roommate_stats", start)

	s.store(ctx, cacheKeyRoommateStats, stats, s.cfg.StatsTTL)
	return &stats, false, nil
}

// SwapMatches reports the exact-swap pairs over the full listing
// snapshot.
func (s *StatsService) SwapMatches(ctx context.Context) (*models.SwapMatchSummary, bool, error) {
	var cached models.SwapMatchSummary
	if hit, _ := s.cache.Get(ctx, cacheKeySwapMatches, &cached); hit {
		return &cached, true, nil
	}

	listings, err := s.listListings(ctx)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	summary := match.SwapSummary(listings)
	s.observe("swap_matches", start)

	s.store(ctx, cacheKeySwapMatches, summary, s.cfg.MatchesTTL)
	return &summary, false, nil
}

// RoommateMatches reports the rooms claimed by at least two searches.
func (s *StatsService) RoommateMatches(ctx context.Context) (*models.RoommateMatchSummary, bool, error) {
	var cached models.RoommateMatchSummary
	if hit, _ := s.cache.Get(ctx, cacheKeyRoommateMatches, &cached); hit {
		return &cached, true, nil
	}

	searches, err := s.listSearches(ctx)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	summary := match.RoommateSummary(searches)
	s.observe("roommate_matches", start)

	s.store(ctx, cacheKeyRoommateMatches, summary, s.cfg.MatchesTTL)
	return &summary, false, nil
}

func (s *StatsService) listListings(ctx context.Context) ([]models.Listing, error) {
	start := time.Now()
	listings, err := s.listings.List(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("listings_list", time.Since(start))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load listings")
	}
	return listings, nil
}

func (s *StatsService) listSearches(ctx context.Context) ([]models.RoommateSearch, error) {
	start := time.Now()
	searches, err := s.roommates.List(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("roommate_searches_list", time.Since(start))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roommate searches")
	}
	return searches, nil
}

func (s *StatsService) observe(kind string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveMatchComputation(kind, time.Since(start))
	}
}

func (s *StatsService) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn("failed to cache derived view", zap.String("key", key), zap.Error(err))
	}
}
