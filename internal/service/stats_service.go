package service

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/schema"
	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

const (
	statsCacheKey      = "stats:summary"
	paymentsStatsField = "payments"
)

type statsRepository interface {
	Count(ctx context.Context, table string) (int64, error)
	PaymentTotals(ctx context.Context) (models.PaymentStats, error)
}

// StatsConfig tunes the aggregator.
type StatsConfig struct {
	CacheTTL    time.Duration
	Concurrency int
}

// StatsService computes the dashboard summary. Each figure is queried on its
// own; a failed figure is reported as zero instead of failing the summary.
type StatsService struct {
	repo    statsRepository
	cache   *CacheService
	metrics *MetricsService
	cfg     StatsConfig
	logger  *zap.Logger
}

// NewStatsService constructs a StatsService.
func NewStatsService(repo statsRepository, cache *CacheService, metrics *MetricsService, cfg StatsConfig, logger *zap.Logger) *StatsService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, cache: cache, metrics: metrics, cfg: cfg, logger: logger}
}

// Summary returns the counts of every counted table plus payment totals. It
// never fails.
func (s *StatsService) Summary(ctx context.Context) models.Stats {
	var cached models.Stats
	if hit, _ := s.cache.Get(ctx, statsCacheKey, &cached); hit {
		return cached
	}

	generation := s.cache.Generation()
	stats, degraded := s.compute(ctx)
	if !degraded {
		_ = s.cache.SetIfCurrent(ctx, statsCacheKey, stats, s.cfg.CacheTTL, generation)
	}
	return stats
}

func (s *StatsService) compute(ctx context.Context) (models.Stats, bool) {
	counts := make([]int64, len(schema.Counted))
	var payments models.PaymentStats
	var degraded atomic.Bool

	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, c := range schema.Counted {
		i, c := i, c
		g.Go(func() error {
			n, err := s.repo.Count(ctx, c.Table)
			if err != nil {
				s.degrade(c.Key, err)
				degraded.Store(true)
				return nil
			}
			counts[i] = n
			return nil
		})
	}
	g.Go(func() error {
		totals, err := s.repo.PaymentTotals(ctx)
		if err != nil {
			s.degrade(paymentsStatsField, err)
			degraded.Store(true)
			return nil
		}
		payments = totals
		return nil
	})
	_ = g.Wait()

	stats := models.Stats{Payments: payments}
	for i, c := range schema.Counted {
		switch c.Key {
		case "students":
			stats.Students = counts[i]
		case "teachers":
			stats.Teachers = counts[i]
		case "departments":
			stats.Departments = counts[i]
		case "courses":
			stats.Courses = counts[i]
		case "enrollments":
			stats.Enrollments = counts[i]
		case "books":
			stats.Books = counts[i]
		}
	}
	return stats, degraded.Load()
}

func (s *StatsService) degrade(field string, err error) {
	s.metrics.RecordStatsDegraded(field)
	s.logger.Warn("stats field degraded to zero",
		zap.String("field", field),
		zap.String("kind", appErrors.KindOf(err).String()),
		zap.Error(err),
	)
}
