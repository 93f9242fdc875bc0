package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)

	var dest map[string]int
	err := repo.Get(context.Background(), "stats:summary", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))

	require.NoError(t, repo.Set(context.Background(), "stats:summary", map[string]int{"a": 1}, time.Minute))
	n, err := repo.DeleteByPattern(context.Background(), "stats:*")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, repo.Close())
}

func TestCacheRepositoryUnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	repo := NewCacheRepository(client, nil)
	ctx := context.Background()

	var dest map[string]int
	err := repo.Get(ctx, "stats:summary", &dest)
	require.Error(t, err)
	assert.False(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.Contains(t, err.Error(), "read snapshot stats:summary")

	err = repo.Set(ctx, "stats:summary", map[string]int{"a": 1}, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write snapshot stats:summary")

	n, err := repo.DeleteByPattern(ctx, "stats:*")
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "scan snapshots stats:*")
	assert.NoError(t, repo.Close())
}
