package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-admin-api/internal/models"
	"github.com/noah-isme/college-admin-api/internal/schema"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

const paymentTotalsQuery = `SELECT COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total FROM payment`

// StatsRepository runs the aggregate queries behind the dashboard summary.
type StatsRepository struct {
	store   *database.Store
	allowed map[string]struct{}
}

// NewStatsRepository constructs the repository.
func NewStatsRepository(store *database.Store) *StatsRepository {
	allowed := make(map[string]struct{}, len(schema.Counted))
	for _, c := range schema.Counted {
		allowed[c.Table] = struct{}{}
	}
	return &StatsRepository{store: store, allowed: allowed}
}

// Count returns the number of rows in one of the counted tables.
func (r *StatsRepository) Count(ctx context.Context, table string) (int64, error) {
	if _, ok := r.allowed[table]; !ok {
		return 0, fmt.Errorf("count %s: table not countable", table)
	}
	var count int64
	err := r.store.WithConn(ctx, "stats.count", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table)
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// PaymentTotals returns the payment row count and the sum of amounts.
func (r *StatsRepository) PaymentTotals(ctx context.Context) (models.PaymentStats, error) {
	var totals models.PaymentStats
	err := r.store.WithConn(ctx, "stats.payments", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.QueryRowxContext(ctx, paymentTotalsQuery).Scan(&totals.Count, &totals.Total)
	})
	if err != nil {
		return models.PaymentStats{}, fmt.Errorf("payment totals: %w", err)
	}
	return totals, nil
}
