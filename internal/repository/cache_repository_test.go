package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
)

func newCacheRepo(t *testing.T) *CacheRepository {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCacheRepository(client, nil)
}

func TestCacheRepositoryRoundTrip(t *testing.T) {
	repo := newCacheRepo(t)
	ctx := context.Background()

	stats := models.RoomStats{TotalRooms: 3, RoomsWithBunkBed: 2, RoomsWithoutBunkBed: 1}
	require.NoError(t, repo.Set(ctx, "stats:rooms", stats, time.Minute))

	var cached models.RoomStats
	require.NoError(t, repo.Get(ctx, "stats:rooms", &cached))
	assert.Equal(t, stats, cached)
}

func TestCacheRepositoryMiss(t *testing.T) {
	repo := newCacheRepo(t)

	var dest models.RoomStats
	err := repo.Get(context.Background(), "stats:missing", &dest)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)
}

func TestCacheRepositoryDeleteByPattern(t *testing.T) {
	repo := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "stats:rooms", models.RoomStats{TotalRooms: 1}, time.Minute))
	require.NoError(t, repo.Set(ctx, "stats:roommates", models.RoommateStats{TotalRoommateSearches: 1}, time.Minute))
	require.NoError(t, repo.Set(ctx, "matches:swap", models.SwapMatchSummary{}, time.Minute))

	require.NoError(t, repo.DeleteByPattern(ctx, "stats:*"))

	var stats models.RoomStats
	assert.ErrorIs(t, repo.Get(ctx, "stats:rooms", &stats), appErrors.ErrCacheMiss)

	var swaps models.SwapMatchSummary
	assert.NoError(t, repo.Get(ctx, "matches:swap", &swaps))
}

func TestCacheRepositoryNilClientMisses(t *testing.T) {
	repo := NewCacheRepository(nil, nil)

	var dest models.RoomStats
	assert.ErrorIs(t, repo.Get(context.Background(), "stats:rooms", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(context.Background(), "stats:rooms", dest, time.Minute))
}
