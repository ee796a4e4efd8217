package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/roomfinder-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, "", nil)
	ctx := context.Background()

	var dest []string
	err := repo.Get(ctx, "freerooms:Monday", &dest)
	assert.ErrorIs(t, err, appErrors.ErrCacheMiss)

	require.NoError(t, repo.Set(ctx, "freerooms:Monday", []string{"LT1"}, time.Minute))
	require.NoError(t, repo.DeleteByPattern(ctx, "freerooms:*"))
	require.NoError(t, repo.Close())
	assert.Equal(t, "roomfinder:freerooms:Monday", repo.key("freerooms:Monday"))
}
