package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheServiceDisabled(t *testing.T) {
	store := newMemoryCacheStore()
	svc := NewCacheService(store, nil, 0, zap.NewNop(), false)

	svc.Store(context.Background(), "k", "v")
	var out string
	assert.False(t, svc.Lookup(context.Background(), "k", &out))
	assert.Zero(t, store.sets)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
	assert.False(t, nilSvc.Lookup(context.Background(), "k", &out))
	require.NoError(t, nilSvc.Invalidate(context.Background(), "*"))
}

func TestCacheServiceRoundTripAndInvalidate(t *testing.T) {
	store := newMemoryCacheStore()
	metrics := NewMetricsService()
	svc := NewCacheService(store, metrics, 0, zap.NewNop(), true)
	ctx := context.Background()

	svc.Store(ctx, "freerooms:Monday:540:600:", []string{"LT1"})
	svc.Store(ctx, "rooms:all", []string{"LT1", "LT2"})

	var out []string
	require.True(t, svc.Lookup(ctx, "freerooms:Monday:540:600:", &out))
	assert.Equal(t, []string{"LT1"}, out)

	require.NoError(t, svc.Invalidate(ctx, "freerooms:*"))
	assert.False(t, svc.Lookup(ctx, "freerooms:Monday:540:600:", &out))
	assert.True(t, svc.Lookup(ctx, "rooms:all", &out))
}

func TestCacheServiceStoreErrorIsMiss(t *testing.T) {
	store := newMemoryCacheStore()
	store.getErr = errors.New("connection refused")
	svc := NewCacheService(store, nil, 0, zap.NewNop(), true)

	var out []string
	assert.False(t, svc.Lookup(context.Background(), "k", &out))
}
