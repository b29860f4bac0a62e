package main

import (
	"context"
	"testing"
	"time"

	"fitness_tracker/internal/db/dbtest"
	"fitness_tracker/internal/repository"
	"fitness_tracker/internal/service"
	"fitness_tracker/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetCatalogCacheDropsServerCatalogs(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	gdb := dbtest.Seeded(t)

	// Warm the cache the way the server does
	server := service.NewFitnessService(repository.NewStore(gdb), service.WithCache(utils.NewCache(rdb, service.CachePrefix), time.Hour))
	_, err := server.Exercises(ctx)
	require.NoError(t, err)
	_, err = server.YogaPoses(ctx)
	require.NoError(t, err)
	_, err = server.Meals(ctx)
	require.NoError(t, err)
	require.NoError(t, mr.Set("fitness:unrelated", "keep"))

	require.NoError(t, resetCatalogCache(ctx, rdb, gdb))

	assert.False(t, mr.Exists("fitness:catalog:exercises"))
	assert.False(t, mr.Exists("fitness:catalog:yoga"))
	assert.False(t, mr.Exists("fitness:catalog:meals"))
	assert.True(t, mr.Exists("fitness:unrelated"))
}
