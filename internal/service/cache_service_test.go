package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServiceDisabled(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	require.NoError(t, svc.Set(context.Background(), "k", 1, 0))
	hit, err := svc.Get(context.Background(), "k", new(int))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, repo.values)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
	assert.NoError(t, nilSvc.Invalidate(context.Background(), "stats:*"))
}

func TestCacheServiceHitMissMetrics(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewCacheService(newFakeCacheRepo(), metrics, time.Minute, nil, true)

	var dest int
	hit, err := svc.Get(context.Background(), "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "k", 7, 0))
	hit, err = svc.Get(context.Background(), "k", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 7, dest)

	assert.Equal(t, 1.0, gatheredValue(t, metrics, "cache_hits_total"))
	assert.Equal(t, 1.0, gatheredValue(t, metrics, "cache_misses_total"))
	assert.Equal(t, 0.5, gatheredValue(t, metrics, "cache_hit_ratio"))
}

func TestCacheServiceGetError(t *testing.T) {
	repo := newFakeCacheRepo()
	repo.getErr = errors.New("redis down")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	hit, err := svc.Get(context.Background(), "k", new(int))
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestCacheServiceSetIfCurrentSkipsAfterInvalidate(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := newTestCache(repo)
	ctx := context.Background()

	generation := svc.Generation()
	require.NoError(t, svc.Invalidate(ctx, "stats:*"))
	require.NoError(t, svc.SetIfCurrent(ctx, "stats:summary", 1, 0, generation))
	assert.Empty(t, repo.values)

	require.NoError(t, svc.SetIfCurrent(ctx, "stats:summary", 2, 0, svc.Generation()))
	var dest int
	hit, err := svc.Get(ctx, "stats:summary", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 2, dest)
}

func TestMetricsServiceRecordsStoreAndStats(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveDBQuery("department.list", time.Millisecond)
	metrics.RecordStatsDegraded("books")
	metrics.RecordSetupTable("Department", "success")

	assert.Equal(t, 1.0, gatheredValue(t, metrics, "stats_degraded_total"))
	assert.Equal(t, 1.0, gatheredValue(t, metrics, "setup_tables_total"))
	assert.Equal(t, 1.0, gatheredValue(t, metrics, "db_query_duration_seconds"))

	var nilMetrics *MetricsService
	nilMetrics.ObserveDBQuery("x", time.Second)
}

// gatheredValue sums counter and gauge values, or histogram sample counts,
// across every series of the named family.
func gatheredValue(t *testing.T, metrics *MetricsService, name string) float64 {
	t.Helper()
	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, m := range family.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		return total
	}
	t.Fatalf("metric family %s not found", name)
	return 0
}
